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

	"github.com/spf13/cobra"

	"github.com/jplu/bcp47/langtag"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate TAG...",
		Short: "Check tags against the configured validity level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) runValidate(w io.Writer, tags []string) error {
	opts, err := a.tagOptions()
	if err != nil {
		return err
	}
	opts.Normalization = langtag.NormalizationNone

	failed := false
	for _, tag := range tags {
		t, err := langtag.Create(tag, opts)
		if err != nil {
			failed = true
			fmt.Fprintf(w, "%s %s: %v\n", a.styles.fail.Sprint("FAIL"), tag, err)
			continue
		}
		fmt.Fprintf(w, "%s %s (%s)\n", a.styles.ok.Sprint("ok"), tag, t.Validity())
	}
	if failed {
		return errFailed
	}
	return nil
}
