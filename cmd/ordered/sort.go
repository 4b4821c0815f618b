// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/ordered/lib/containers"
	"git.lukeshu.com/go/ordered/lib/slices"
)

func init() {
	var relFlags relationFlags
	var uniqueFlag bool
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "sort [flags] FILE.json",
			Short: "Sort a JSON array of scalar values",
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ctx := cmd.Context()

			rel, err := relFlags.build()
			if err != nil {
				return err
			}

			ctx := dlog.WithField(_ctx, "ordered.sort.step", "read")
			dlog.Infof(ctx, "Reading %q...", args[0])
			vals, err := readJSONFile[[]jsonValue](ctx, args[0])
			if err != nil {
				return err
			}
			dlog.Infof(ctx, "... read %d values", len(vals))

			// The nulls decorator works on pointers; JSON nulls
			// become nil.
			ptrs := make([]*jsonValue, len(vals))
			for i := range vals {
				if vals[i].Kind != kindNull {
					ptrs[i] = &vals[i]
				}
			}

			ctx = dlog.WithField(_ctx, "ordered.sort.step", "sort")
			counted := &countingOrdering[*jsonValue]{inner: rel}
			if uniqueFlag {
				dlog.Infof(ctx, "Sorting %d values, dropping duplicates...", len(ptrs))
				tree := &containers.RBTree[*jsonValue]{Order: counted}
				for _, ptr := range ptrs {
					tree.Insert(ptr)
				}
				ptrs = ptrs[:0]
				tree.Range(func(node *containers.RBNode[*jsonValue]) bool {
					ptrs = append(ptrs, node.Value)
					return true
				})
				dlog.Infof(ctx, "... %d values after %d comparisons", len(ptrs), counted.Count())
			} else {
				dlog.Infof(ctx, "Sorting %d values...", len(ptrs))
				slices.SortBy(ptrs, counted)
				dlog.Infof(ctx, "... sorted after %d comparisons", counted.Count())
			}

			ctx = dlog.WithField(_ctx, "ordered.sort.step", "write")
			dlog.Info(ctx, "Writing sorted values to stdout...")
			out := make([]jsonValue, len(ptrs))
			for i, ptr := range ptrs {
				if ptr == nil {
					out[i] = jsonValue{Kind: kindNull}
				} else {
					out[i] = *ptr
				}
			}
			if err := writeJSONFile(os.Stdout, out, lowmemjson.ReEncoderConfig{
				Indent:                "\t",
				ForceTrailingNewlines: true,
				CompactIfUnder:        120, //nolint:gomnd // This is what looks nice.
			}); err != nil {
				return err
			}
			dlog.Info(ctx, "... done writing")

			return nil
		},
	}
	relFlags.addTo(cmd.Command.Flags())
	cmd.Command.Flags().BoolVar(&uniqueFlag, "unique", false,
		"Keep only one of each run of equal values")
	subcommands = append(subcommands, cmd)
}
