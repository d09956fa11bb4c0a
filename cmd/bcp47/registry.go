/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

func newRegistryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect or export the loaded registry",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print the registry date and record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.runRegistryInfo(cmd.OutOrStdout())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "snapshot FILE",
		Short: "Write the registry as a msgpack snapshot loadable with --registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSnapshot(args[0])
		},
	})
	return cmd
}

func (a *app) runRegistryInfo(w io.Writer) {
	counts := make(map[string]int)
	wholeTags, deprecated := 0, 0
	for _, r := range a.reg.Records {
		counts[r.Type]++
		if r.IsGrandfathered() {
			wholeTags++
		}
		if r.IsDeprecated() {
			deprecated++
		}
	}
	line := func(label string, value any) {
		fmt.Fprintf(w, "%s %v\n", a.styles.label.Sprintf("%-14s", label), value)
	}
	line("file-date", a.reg.FileDate)
	for _, typ := range slices.Sorted(maps.Keys(counts)) {
		line(typ, counts[typ])
	}
	line("extension", len(a.reg.Extensions))
	line("whole-tag", wholeTags)
	line("deprecated", deprecated)
}

func (a *app) runSnapshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := a.reg.WriteSnapshot(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	a.log.Debug("snapshot written", "path", path, "records", len(a.reg.Records))
	return nil
}
