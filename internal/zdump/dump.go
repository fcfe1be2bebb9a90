package zdump

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCommand(ctx context.Context, o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE...",
		Short: "Print every section of one or more TZif files.",
		Long: `Print the header counts, raw transitions, local time type records,
designations, leap seconds and indicators of each file. Files are decoded
concurrently and printed in the order given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runDump(ctx, args)
		},
	}
}

func (o *Options) runDump(ctx context.Context, paths []string) error {
	results, err := o.decodeAll(ctx, paths)
	if err != nil {
		return err
	}
	if len(results) == 1 {
		if results[0].Err != nil {
			return results[0].Err
		}
		return PrintDump(o.Out, results[0].File, o.loc)
	}

	var failed int
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(o.Out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(o.Out, "==> %s <==\n", r.Path); err != nil {
			return err
		}
		if r.Err != nil {
			failed++
			_, _ = fmt.Fprintf(o.ErrOut, "%s: %v\n", r.Path, r.Err)
			continue
		}
		if err := PrintDump(o.Out, r.File, o.loc); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be decoded", failed, len(paths))
	}
	return nil
}
