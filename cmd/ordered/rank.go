// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/ordered/lib/containers"
	"git.lukeshu.com/go/ordered/lib/maps"
	"git.lukeshu.com/go/ordered/lib/ordering"
)

func init() {
	var domainFilename string
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "rank --domain=DOMAIN.json [FILE.json]",
			Short: "Print the rank table of a domain, and tally values against it",
			Args:  cliutil.WrapPositionalArgs(cobra.MaximumNArgs(1)),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ctx := cmd.Context()

			ctx := dlog.WithField(_ctx, "ordered.rank.step", "domain")
			domainVals, err := readJSONFile[[]jsonValue](ctx, domainFilename)
			if err != nil {
				return err
			}
			order, err := ordering.Given(domainVals...)
			if err != nil {
				return err
			}
			dlog.Infof(ctx, "domain has %d values", order.Len())

			table := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintf(table, "rank\tvalue\n")
			for _, val := range order.Domain() {
				rank, _ := order.Rank(val)
				fmt.Fprintf(table, "%d\t%v\n", rank, val)
			}
			table.Flush()

			if len(args) == 0 {
				return nil
			}

			ctx = dlog.WithField(_ctx, "ordered.rank.step", "tally")
			vals, err := readJSONFile[[]jsonValue](ctx, args[0])
			if err != nil {
				return err
			}
			tally := containers.NewMultiset(order)
			seen := make(containers.Set[string])
			var skipped int
			for _, val := range vals {
				if _, ok := order.Rank(val); !ok {
					skipped++
					seen.Insert(val.String())
					continue
				}
				tally.Insert(val)
			}
			if skipped > 0 {
				dlog.Warnf(ctx, "skipped %d values outside of the domain: %v",
					skipped, maps.SortedKeys(seen))
			}
			dlog.Infof(ctx, "tallied %d values", tally.Total())

			fmt.Println()
			table = tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintf(table, "rank\tvalue\tcount\n")
			tally.Range(func(val jsonValue, cnt uint) bool {
				rank, _ := order.Rank(val)
				fmt.Fprintf(table, "%d\t%v\t%d\n", rank, val, cnt)
				return true
			})
			table.Flush()

			return nil
		},
	}
	cmd.Command.Flags().StringVar(&domainFilename, "domain", "",
		"JSON array declaring the domain, from least to greatest")
	if err := cmd.Command.MarkFlagFilename("domain"); err != nil {
		panic(err)
	}
	if err := cmd.Command.MarkFlagRequired("domain"); err != nil {
		panic(err)
	}
	subcommands = append(subcommands, cmd)
}
