package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmetrics/internal/config"
)

func parse(t *testing.T, argv ...string) (Options, *pflag.FlagSet) {
	t.Helper()
	var o Options
	fs := pflag.NewFlagSet("genome-metrics", pflag.ContinueOnError)
	BindPersistent(fs, &o)
	BindRun(fs, &o)
	require.NoError(t, fs.Parse(argv))
	return o, fs
}

func TestApplyOnlyChangedFlags(t *testing.T) {
	o, fs := parse(t, "--limit", "3", "--out-csv", "out.csv")
	c := config.Default()
	c.WorkDir = "/from/yaml"
	o.Apply(&c, fs.Changed)

	assert.Equal(t, 3, c.Limit)
	assert.Equal(t, "out.csv", c.OutCSV)
	assert.Equal(t, "/from/yaml", c.WorkDir, "unset flag must not clobber config")
	assert.True(t, c.AppendCuration)
}

func TestApplyNoAppendAndVerbose(t *testing.T) {
	o, fs := parse(t, "--no-append-curation", "-v")
	c := config.Default()
	o.Apply(&c, fs.Changed)
	assert.False(t, c.AppendCuration)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestExplicitLogLevelBeatsVerbose(t *testing.T) {
	o, fs := parse(t, "-v", "--log-level", "warn")
	c := config.Default()
	o.Apply(&c, fs.Changed)
	assert.Equal(t, "warn", c.LogLevel)
}
