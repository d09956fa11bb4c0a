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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jplu/bcp47/langtag"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse TAG...",
		Short: "Split tags into their subtags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}
			return a.runParse(cmd.OutOrStdout(), args, asJSON)
		},
	}
	cmd.Flags().Bool("json", false, "print the subtags as JSON")
	return cmd
}

func (a *app) runParse(w io.Writer, tags []string, asJSON bool) error {
	enc := json.NewEncoder(w)
	failed := false
	for _, tag := range tags {
		parts, err := langtag.Parse(tag, a.reg)
		if err != nil {
			failed = true
			fmt.Fprintf(w, "%s %s: %v\n", a.styles.fail.Sprint("error"), tag, err)
			continue
		}
		if asJSON {
			if err := enc.Encode(parts); err != nil {
				return fmt.Errorf("failed to encode %s: %w", tag, err)
			}
			continue
		}
		a.printParts(w, tag, parts)
	}
	if failed {
		return errFailed
	}
	return nil
}

func (a *app) printParts(w io.Writer, tag string, parts langtag.TagParts) {
	fmt.Fprintln(w, a.styles.value.Sprint(tag))
	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(w, "  %s %s\n", a.styles.label.Sprintf("%-14s", name), value)
		}
	}
	field("grandfathered", string(parts.Grandfathered))
	field("language", string(parts.PrimaryLanguage))
	for _, e := range parts.Extlangs {
		field("extlang", string(e))
	}
	field("script", string(parts.Script))
	field("region", string(parts.Region))
	for _, v := range parts.Variants {
		field("variant", string(v))
	}
	for _, e := range parts.Extensions {
		field("extension", e.String())
	}
	if len(parts.PrivateUse) > 0 {
		values := make([]string, len(parts.PrivateUse))
		for i, p := range parts.PrivateUse {
			values[i] = string(p)
		}
		field("private use", strings.Join(values, "-"))
	}
}
