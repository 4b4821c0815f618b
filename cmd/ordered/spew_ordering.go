// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/ordered/lib/textui"
)

func init() {
	var relFlags relationFlags
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "spew-ordering [flags]",
			Short: "Spew the ordering that `sort` would use, as built",
			Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			rel, err := relFlags.build()
			if err != nil {
				return err
			}

			spew := spew.NewDefaultConfig()
			spew.DisablePointerAddresses = true

			spew.Dump(rel)
			textui.Fprintf(os.Stdout, "hash = 0x%016x\n", rel.Hash())
			return nil
		},
	}
	relFlags.addTo(cmd.Command.Flags())
	subcommands = append(subcommands, cmd)
}
