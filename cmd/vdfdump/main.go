// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command vdfdump loads a Steam appinfo.vdf or shortcuts.vdf file and
// prints a summary, mirroring the teacher pedumper tool this module's
// library was modeled after.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	vdf "github.com/noaione/steamvdf"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vdfdump",
		Short: "Inspect Steam appinfo.vdf and shortcuts.vdf files",
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Dump a parsed VDF file",
	}
	dump.AddCommand(newDumpAppInfoCmd(), newDumpShortcutsCmd())
	root.AddCommand(dump)

	return root
}

func newDumpAppInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "appinfo <path>",
		Short: "Load an appinfo.vdf file and print the decoded catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpAppInfo(args[0])
		},
	}
}

func newDumpShortcutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcuts <path>",
		Short: "Load a shortcuts.vdf file and print the extracted shortcuts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpShortcuts(args[0])
		},
	}
}

func dumpAppInfo(path string) error {
	log.Printf("loading appinfo from %s", path)

	catalog, err := vdf.LoadCatalogFile(path, nil)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	type summary struct {
		Version  string   `json:"version"`
		Universe uint32   `json:"universe"`
		AppCount int      `json:"app_count"`
		Sample   []string `json:"sample_names,omitempty"`
	}

	out := summary{
		Version:  fmt.Sprintf("%#x", catalog.Version),
		Universe: catalog.Universe,
		AppCount: len(catalog.Apps),
	}
	for _, app := range catalog.Apps {
		if name, ok := app.Name(); ok {
			out.Sample = append(out.Sample, name)
			if len(out.Sample) >= 10 {
				break
			}
		}
	}

	return printJSON(out)
}

func dumpShortcuts(path string) error {
	log.Printf("loading shortcuts from %s", path)

	kv, err := vdf.ParseKeyValuesFile(path, nil)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	shortcuts := vdf.ExtractShortcuts(kv)
	return printJSON(shortcuts)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "\t")
	return enc.Encode(v)
}
