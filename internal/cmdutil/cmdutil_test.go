package cmdutil

import (
	"flag"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func TestNormalizeNameForEnvVar(t *testing.T) {
	assert.Equal(t, "ZDUMP_ALLOW_EXTENDED", NormalizeNameForEnvVar("zdump_allow-extended"))
}

func newTestCommand() (*cobra.Command, *bool, *int) {
	var (
		utc         bool
		concurrency = 4
	)
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().BoolVar(&utc, "utc", utc, "")
	cmd.Flags().IntVar(&concurrency, "concurrency", concurrency, "")
	return cmd, &utc, &concurrency
}

func TestReadFlagsFromEnv(t *testing.T) {
	t.Setenv("TEST_UTC", "true")
	t.Setenv("TEST_CONCURRENCY", "9")

	cmd, utc, concurrency := newTestCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--concurrency=2"}))
	require.NoError(t, ReadFlagsFromEnv("TEST_", cmd))

	assert.True(t, *utc)
	assert.Equal(t, 2, *concurrency, "command line takes precedence")
}

func TestReadFlagsFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("TEST_CONCURRENCY", "many")

	cmd, _, _ := newTestCommand()
	require.NoError(t, cmd.ParseFlags(nil))
	err := ReadFlagsFromEnv("TEST_", cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"TEST_CONCURRENCY"`)
}

func TestUsageError(t *testing.T) {
	root := &cobra.Command{Use: "zdump"}
	sub := &cobra.Command{Use: "diff"}
	root.AddCommand(sub)

	err := UsageError(sub, "expected %d files", 2)
	assert.EqualError(t, err, "expected 2 files\nSee 'zdump diff -h' for help and examples.")
}

func TestInstallKlog(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	klog.InitFlags(fs)

	cmd := &cobra.Command{Use: "test"}
	InstallKlog(cmd, fs)

	require.NotNil(t, cmd.PersistentFlags().Lookup(FlagLogLevelKey))
	require.True(t, cmd.PersistentFlags().Lookup("v").Hidden)
	require.NoError(t, cmd.PersistentFlags().Set(FlagLogLevelKey, "3"))
	assert.Equal(t, "3", fs.Lookup("v").Value.String())
	require.NoError(t, cmd.PersistentFlags().Set(FlagLogLevelKey, "0"))
}
