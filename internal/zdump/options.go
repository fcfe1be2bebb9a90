package zdump

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/ngrash/zdump/internal/cmdutil"
	"github.com/ngrash/zdump/tzif"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Options are shared by every zdump subcommand.
type Options struct {
	cmdutil.IOStreams

	UTC           bool
	AllowExtended bool
	Concurrency   int

	loc     *time.Location
	decoder []tzif.Option
}

func NewOptions(streams cmdutil.IOStreams) *Options {
	return &Options{
		IOStreams:   streams,
		Concurrency: runtime.NumCPU(),
	}
}

func (o *Options) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&o.UTC, "utc", "u", o.UTC, "Print times in UTC instead of the local time zone.")
	cmd.PersistentFlags().BoolVarP(&o.AllowExtended, "allow-extended", "", o.AllowExtended, "Read the version 1 data block of version 2+ files instead of rejecting them.")
	cmd.PersistentFlags().IntVarP(&o.Concurrency, "concurrency", "", o.Concurrency, "Maximum number of files decoded at once.")
}

func (o *Options) Validate() error {
	if o.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", o.Concurrency)
	}
	return nil
}

func (o *Options) Complete() error {
	o.loc = time.Local
	if o.UTC {
		o.loc = time.UTC
	}
	o.decoder = nil
	if o.AllowExtended {
		o.decoder = append(o.decoder, tzif.WithExtendedVersions())
	}
	return nil
}

func (o *Options) readFile(path string) (*tzif.File, error) {
	return tzif.ReadFile(path, o.decoder...)
}

// decodeResult is the outcome of decoding one file.
type decodeResult struct {
	Path string
	File *tzif.File
	Err  error
}

// decodeAll decodes paths concurrently. Results are returned in the order
// of paths; a file that failed to decode carries its error.
func (o *Options) decodeAll(ctx context.Context, paths []string) ([]decodeResult, error) {
	klog.V(2).InfoS("Decoding files", "Count", len(paths), "Concurrency", o.Concurrency)

	results := make([]decodeResult, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Concurrency)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := o.readFile(path)
			if err != nil {
				klog.V(2).InfoS("Can't decode file", "Path", path, "Error", err)
			}
			results[i] = decodeResult{Path: path, File: f, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
