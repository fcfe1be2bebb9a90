package zdump

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newValidateCommand(ctx context.Context, o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check TZif files against the RFC 8536 constraints.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runValidate(ctx, args)
		},
	}
}

func (o *Options) runValidate(ctx context.Context, paths []string) error {
	results, err := o.decodeAll(ctx, paths)
	if err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		err := r.Err
		if err == nil {
			err = r.File.Validate()
		}
		if err == nil {
			if _, err := fmt.Fprintf(o.Out, "%s: OK\n", r.Path); err != nil {
				return err
			}
			continue
		}

		failed++
		klog.V(2).InfoS("File failed validation", "Path", r.Path, "Error", err)
		if _, err := fmt.Fprintf(o.Out, "%s: FAIL\n", r.Path); err != nil {
			return err
		}
		for _, line := range strings.Split(err.Error(), "\n") {
			if _, err := fmt.Fprintf(o.Out, "  %s\n", line); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(paths))
	}
	return nil
}
