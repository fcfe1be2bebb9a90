// Package cmdutil holds helpers shared by command line tools.
package cmdutil

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

const (
	FlagLogLevelKey = "loglevel"
)

// IOStreams is a structure containing all standard streams.
type IOStreams struct {
	// In think, os.Stdin
	In io.Reader
	// Out think, os.Stdout
	Out io.Writer
	// ErrOut think, os.Stderr
	ErrOut io.Writer
}

func UsageError(cmd *cobra.Command, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s\nSee '%s -h' for help and examples.", msg, cmd.CommandPath())
}

func NormalizeNameForEnvVar(name string) string {
	s := strings.ToUpper(name)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// ReadFlagsFromEnv sets every flag that was not given on the command line
// from the environment variable named prefix + flag name, upper-cased with
// dashes turned into underscores.
func ReadFlagsFromEnv(prefix string, cmd *cobra.Command) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			// flags always take precedence over environment
			return
		}

		envVarName := NormalizeNameForEnvVar(prefix + f.Name)
		v, exists := os.LookupEnv(envVarName)
		if !exists {
			return
		}

		if err := f.Value.Set(v); err != nil {
			errs = append(errs, fmt.Errorf("can't parse env var %q with value %q into flag %q: %w", envVarName, v, f.Name, err))
			return
		}
		f.Changed = true
	})

	return errors.Join(errs...)
}

// InstallKlog exposes the klog verbosity registered on fs as the
// --loglevel flag of cmd. klog.InitFlags(fs) must have been called.
func InstallKlog(cmd *cobra.Command, fs *flag.FlagSet) {
	level := fs.Lookup("v").Value.(*klog.Level)
	levelPtr := (*int32)(level)
	cmd.PersistentFlags().Int32Var(levelPtr, FlagLogLevelKey, *levelPtr, "Set the level of log output (0-10).")
	if cmd.PersistentFlags().Lookup("v") == nil {
		cmd.PersistentFlags().Int32VarP(levelPtr, "v", "v", *levelPtr, "Set the level of log output (0-10).")
	}
	cmd.PersistentFlags().Lookup("v").Hidden = true
}
