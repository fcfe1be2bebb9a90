package zdump

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/ngrash/zdump/tzif"
	"github.com/spf13/cobra"
)

func newDiffCommand(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "diff FILE_A FILE_B",
		Short: "Compare the decoded contents of two TZif files.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runDiff(args[0], args[1])
		},
	}
}

// contents is the comparable form of a decoded file.
type contents struct {
	Header                 tzif.Header
	Transitions            []tzif.Transition
	LocalTimeTypes         []tzif.LocalTimeTypeRecord
	Designations           []string
	LeapSeconds            []tzif.LeapSecondRecord
	StandardWallIndicators []bool
	UTLocalIndicators      []bool
	Trailing               int
}

func contentsOf(f *tzif.File) contents {
	return contents{
		Header:                 f.Header(),
		Transitions:            f.RawTransitions(),
		LocalTimeTypes:         f.LocalTimeTypes(),
		Designations:           strings.Split(string(f.Designations()), "\x00"),
		LeapSeconds:            f.LeapSeconds(),
		StandardWallIndicators: f.StandardWallIndicators(),
		UTLocalIndicators:      f.UTLocalIndicators(),
		Trailing:               f.Trailing(),
	}
}

func (o *Options) runDiff(pathA, pathB string) error {
	a, err := o.readFile(pathA)
	if err != nil {
		return err
	}
	b, err := o.readFile(pathB)
	if err != nil {
		return err
	}

	if diff := cmp.Diff(contentsOf(a), contentsOf(b)); diff != "" {
		_, err = fmt.Fprintf(o.Out, "files are different: -A +B\n%s", diff)
	} else {
		_, err = fmt.Fprintln(o.Out, "files are identical")
	}
	return err
}
