// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

// Command phfwd reads the §6 command language from standard input,
// applies it against an in-memory set of forwarding bases, and writes
// query results to standard output. See internal/interp's Session for
// the commands it accepts and the ERROR-line format it reports.
package main

import (
	"fmt"
	"os"

	"github.com/CStanKonrad/IPPPhoneForwarding/internal/interp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "phfwd",
		Short:         "Phone number forwarding base interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var log *logrus.Logger
			if verbose {
				log = logrus.New()
				log.SetLevel(logrus.DebugLevel)
				log.SetOutput(os.Stderr)
			}

			session := interp.New(os.Stdin, os.Stdout, log)
			if err := session.Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "log diagnostic command trace to stderr (additive only; never replaces the ERROR contract)")
	return cmd
}
