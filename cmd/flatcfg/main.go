// SPDX-License-Identifier: MIT

// Command flatcfg inspects and edits flatcfg store files without needing
// the owning application's catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "flatcfg",
		Short:         "Inspect and edit flatcfg store files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(catCmd, getCmd, setCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
