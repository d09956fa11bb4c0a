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

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare TAG1 TAG2",
		Short: "Grade how well TAG2 matches TAG1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func (a *app) runCompare(w io.Writer, tag1, tag2 string) error {
	opts, err := a.tagOptions()
	if err != nil {
		return err
	}
	t1, err := langtag.Create(tag1, opts)
	if err != nil {
		return err
	}
	t2, err := langtag.Create(tag2, opts)
	if err != nil {
		return err
	}

	quality, err := langtag.Comparer{Normalization: opts.Normalization}.Compare(t1, t2)
	if err != nil {
		return err
	}
	style := a.styles.ok
	if quality == langtag.QualityNone {
		style = a.styles.fail
	}
	fmt.Fprintf(w, "%s %s: %s (%.1f)\n", t1, t2, style.Sprint(quality), float64(quality))
	return nil
}
