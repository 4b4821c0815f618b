// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/ordered/lib/containers"
	"git.lukeshu.com/go/ordered/lib/ordering"
	"git.lukeshu.com/go/ordered/lib/slices"
)

func init() {
	var domainFilename string
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "check --domain=DOMAIN.json FILE.json",
			Short: "Check that values belong to a domain, and whether they are sorted",
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ctx := cmd.Context()

			ctx := dlog.WithField(_ctx, "ordered.check.step", "domain")
			domainVals, err := readJSONFile[[]jsonValue](ctx, domainFilename)
			if err != nil {
				return err
			}
			order, err := ordering.Given(domainVals...)
			if err != nil {
				return err
			}
			constraint := containers.DomainConstraint(order)

			ctx = dlog.WithField(_ctx, "ordered.check.step", "check")
			vals, err := readJSONFile[[]jsonValue](ctx, args[0])
			if err != nil {
				return err
			}
			ctx = dlog.WithField(ctx, "ordered.check.constraint", constraint)
			var bad int
			for i, val := range vals {
				if err := constraint.Check(val); err != nil {
					bad++
					dlog.Errorf(ctx, "value %d: %v", i, err)
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d values are not in the domain", bad, len(vals))
			}
			if slices.IsSortedBy(vals, order) {
				dlog.Infof(ctx, "all %d values are in the domain, and are sorted", len(vals))
			} else {
				dlog.Infof(ctx, "all %d values are in the domain, but are not sorted", len(vals))
			}

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
