// Package zdump implements the zdump command line tool.
package zdump

import (
	"context"
	"fmt"

	"github.com/ngrash/zdump/internal/cmdutil"
	"github.com/spf13/cobra"
)

const (
	EnvVarPrefix = "ZDUMP_"
)

// NewZdumpCommand returns the root command. Given a single file it prints
// the formatted transitions followed by the resolved types.
func NewZdumpCommand(ctx context.Context, streams cmdutil.IOStreams) *cobra.Command {
	o := NewOptions(streams)

	cmd := &cobra.Command{
		Use:   "zdump FILE",
		Short: "Inspect legacy (version 1) TZif time zone files.",
		Long: `zdump decodes compiled zoneinfo files in the version 1 TZif format and
prints their transitions, local time types, leap seconds and indicators.

Every flag can also be set with an environment variable prefixed with
` + EnvVarPrefix + `, e.g. ` + EnvVarPrefix + `UTC=true.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdutil.ReadFlagsFromEnv(EnvVarPrefix, cmd); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Complete()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runSummary(args[0])
		},
	}
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)
	o.AddFlags(cmd)

	cmd.AddCommand(
		newDumpCommand(ctx, o),
		newTransitionsCommand(o),
		newTypesCommand(o),
		newDiffCommand(o),
		newValidateCommand(ctx, o),
	)
	return cmd
}

func (o *Options) runSummary(path string) error {
	f, err := o.readFile(path)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(o.Out, "Transitions:"); err != nil {
		return err
	}
	if err := PrintTransitions(o.Out, f, o.loc); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(o.Out, "Types:"); err != nil {
		return err
	}
	return PrintTypes(o.Out, f)
}

func newTransitionsCommand(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "transitions FILE",
		Short: "Print the transitions of a TZif file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.readFile(args[0])
			if err != nil {
				return err
			}
			return PrintTransitions(o.Out, f, o.loc)
		},
	}
}

func newTypesCommand(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "types FILE",
		Short: "Print the local time types of a TZif file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.readFile(args[0])
			if err != nil {
				return err
			}
			return PrintTypes(o.Out, f)
		},
	}
}
