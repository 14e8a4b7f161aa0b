// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "flatcfg-test"})

	l := WithComponent("store")
	l.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"store"`) {
		t.Errorf("expected component field in output, got %s", out)
	}
	if !strings.Contains(out, `"service":"flatcfg-test"`) {
		t.Errorf("expected service field in output, got %s", out)
	}
}
