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
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jplu/bcp47/langtag"
)

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [TAG...]",
		Short: "Bring tags to the configured validity and normalization levels",
		Long: `normalize prints every tag in the form selected by --validity and
--normalization. Without arguments, tags are read from standard input, one per
line. Tags are processed concurrently by --workers goroutines and printed in
input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := args
			if len(tags) == 0 {
				var err error
				if tags, err = readTags(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			return a.runNormalize(cmd.Context(), cmd.OutOrStdout(), tags)
		},
	}
}

// readTags returns the non-blank lines of r, trimmed.
func readTags(r io.Reader) ([]string, error) {
	var tags []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			tags = append(tags, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}
	return tags, nil
}

type normalized struct {
	input  string
	output string
	err    error
}

// normalizeAll creates every tag with opts using at most workers goroutines.
// Per-tag failures are reported in the results; only cancellation of ctx
// fails the whole batch.
func normalizeAll(
	ctx context.Context, tags []string, opts langtag.Options, workers int, log *slog.Logger,
) ([]normalized, error) {
	results := make([]normalized, len(tags))
	if len(tags) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(tags)))
	for i, tag := range tags {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns results[i].
			results[i].input = tag
			t, err := langtag.Create(tag, opts)
			if err != nil {
				log.Debug("tag rejected", "tag", tag, "error", err)
				results[i].err = err
				return nil
			}
			results[i].output = t.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug("batch normalized", "tags", len(tags), "workers", workers)
	return results, nil
}

func (a *app) runNormalize(ctx context.Context, w io.Writer, tags []string) error {
	opts, err := a.tagOptions()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := normalizeAll(ctx, tags, opts, a.cfg.Workers, a.log)
	if err != nil {
		return err
	}

	failed := false
	for _, r := range results {
		if r.err != nil {
			failed = true
			fmt.Fprintf(w, "%s\t%s %v\n", r.input, a.styles.fail.Sprint("error"), r.err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", r.input, a.styles.value.Sprint(r.output))
	}
	if failed {
		return errFailed
	}
	return nil
}
