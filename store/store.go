// SPDX-License-Identifier: MIT

// Package store maps an ordered settings catalog to and from a flat,
// line-oriented text file of "name: escaped-value" lines.
package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/ManuGH/flatcfg/internal/log"
	"github.com/ManuGH/flatcfg/setting"
)

// Delimiter separates a setting name from its escaped value. Only the
// first occurrence on a line counts.
const Delimiter = ": "

// Entry pairs a setting name with its container.
type Entry struct {
	Name    string
	Setting setting.Setting
}

// Load reads the file at path into the given entries. A missing file is a
// no-op. Lines without the delimiter and lines naming no known entry are
// skipped; a decode or validation failure aborts the whole load, since
// reporting partial state as a successful load is worse than a clear
// error.
func Load(path string, entries []Entry) error {
	logger := log.WithComponent("store")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str(log.FieldPath, path).Msg("store file absent, keeping defaults")
			return nil
		}
		loadErrorsTotal.Inc()
		return fmt.Errorf("open store file: %w", err)
	}
	defer func() { _ = f.Close() }()

	byName := make(map[string]setting.Setting, len(entries))
	for _, e := range entries {
		byName[e.Name] = e.Setting
	}

	scanner := bufio.NewScanner(f)
	// Escaped values stay on one line but can be long.
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		name, value, found := strings.Cut(scanner.Text(), Delimiter)
		if !found {
			linesSkippedTotal.Inc()
			logger.Debug().Int(log.FieldLine, lineNum).Msg("skipping malformed line")
			continue
		}
		s, ok := byName[name]
		if !ok {
			linesSkippedTotal.Inc()
			logger.Debug().Int(log.FieldLine, lineNum).Str(log.FieldSetting, name).Msg("skipping unknown setting")
			continue
		}
		if err := s.Decode(Unescape(value)); err != nil {
			loadErrorsTotal.Inc()
			return fmt.Errorf("decode setting %q: %w", name, err)
		}
	}
	if err := scanner.Err(); err != nil {
		loadErrorsTotal.Inc()
		return fmt.Errorf("read store file: %w", err)
	}

	loadsTotal.Inc()
	return nil
}

// Save rewrites the file at path from the entries, in order, one line per
// setting. The write is atomic: content goes to a pending temp file that
// replaces the target only after everything succeeded. An encode failure
// aborts before the target is touched.
func Save(path string, entries []Entry) error {
	logger := log.WithComponent("store")

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		data, err := e.Setting.Encode()
		if err != nil {
			saveErrorsTotal.Inc()
			return fmt.Errorf("encode setting %q: %w", e.Name, err)
		}
		lines = append(lines, e.Name+Delimiter+Escape(data))
	}

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		saveErrorsTotal.Inc()
		return fmt.Errorf("create pending store file: %w", err)
	}
	defer func() {
		// renameio removes the temp file if it was not committed.
		if err := pending.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending store file")
		}
	}()

	w := bufio.NewWriter(pending)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			saveErrorsTotal.Inc()
			return fmt.Errorf("write store file: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			saveErrorsTotal.Inc()
			return fmt.Errorf("write store file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		saveErrorsTotal.Inc()
		return fmt.Errorf("flush store file: %w", err)
	}

	// CloseAtomicallyReplace: fsync + rename.
	if err := pending.CloseAtomicallyReplace(); err != nil {
		saveErrorsTotal.Inc()
		return fmt.Errorf("atomically replace store file: %w", err)
	}

	savesTotal.Inc()
	return nil
}
