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
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jplu/bcp47/langtag"
)

type filterFlags struct {
	desired    []string
	accept     string
	available  []string
	fullTag    bool
	useDesired bool
	fallback   string
	details    bool
}

func newFilterCmd(a *app) *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Rank available tags against desired ones",
		Example: `  bcp47 filter --desired es-MX,en --available es-419,es-ES,en-GB
  bcp47 filter --accept "fr-CH, fr;q=0.9, en;q=0.8" --available fr,en-US --details`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFilter(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringSliceVar(&f.desired, "desired", nil, "desired tags, most wanted first")
	cmd.Flags().StringVar(&f.accept, "accept", "", "desired tags as an Accept-Language header")
	cmd.Flags().StringSliceVar(&f.available, "available", nil, "available tags")
	cmd.Flags().BoolVar(&f.fullTag, "full-tag", false, "keep one match per tag instead of per primary language")
	cmd.Flags().BoolVar(&f.useDesired, "use-desired", false, "report desired tags instead of available ones")
	cmd.Flags().StringVar(&f.fallback, "fallback", "", "tag returned when nothing matches")
	cmd.Flags().BoolVar(&f.details, "details", false, "print the quality and score of each match")
	cmd.MarkFlagsMutuallyExclusive("desired", "accept")
	_ = cmd.MarkFlagRequired("available")
	return cmd
}

func (a *app) runFilter(w io.Writer, f filterFlags) error {
	opts, err := a.tagOptions()
	if err != nil {
		return err
	}

	var desired []*langtag.LanguageTag
	if f.accept != "" {
		desired = langtag.ParseAcceptLanguage(f.accept, opts)
	} else if desired, err = createAll(f.desired, opts); err != nil {
		return err
	}
	if len(desired) == 0 {
		return errors.New("no usable desired tag")
	}
	available, err := createAll(f.available, opts)
	if err != nil {
		return err
	}

	filterOpts := langtag.FilterOptions{
		Comparer: langtag.Comparer{Normalization: opts.Normalization},
	}
	if f.fullTag {
		filterOpts.Filter = langtag.FilterFullTag
	}
	if f.useDesired {
		filterOpts.Use = langtag.UseDesiredLanguage
	}
	if f.fallback != "" {
		if filterOpts.UltimateFallback, err = langtag.Create(f.fallback, opts); err != nil {
			return fmt.Errorf("invalid fallback: %w", err)
		}
	}

	matches, err := langtag.FilterLanguageTagsWithDetails(desired, available, filterOpts)
	if err != nil {
		return err
	}
	a.log.Debug("filtered", "desired", len(desired), "available", len(available), "matches", len(matches))
	for _, m := range matches {
		tag := a.styles.value.Sprint(m.Tag(filterOpts.Use))
		if !f.details {
			fmt.Fprintln(w, tag)
			continue
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s %s\tscore %.3f\n",
			tag,
			a.styles.label.Sprint("desired"), m.Desired,
			a.styles.label.Sprint("quality"), m.Quality,
			m.Score)
	}
	return nil
}

func createAll(tags []string, opts langtag.Options) ([]*langtag.LanguageTag, error) {
	out := make([]*langtag.LanguageTag, 0, len(tags))
	for _, tag := range tags {
		t, err := langtag.Create(tag, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
