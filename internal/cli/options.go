// internal/cli/options.go
package cli

import (
	"github.com/spf13/pflag"

	"gmetrics/internal/config"
)

// Options holds command-line flags. Only flags the user actually set
// override the resolved config.
type Options struct {
	ConfigFile string

	// Inputs
	InputTable string
	WorkDir    string
	Curation   string

	// Outputs
	OutJSON          string
	OutCSV           string
	Format           string
	NoAppendCuration bool
	Limit            int

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
	Verbose   bool
}

// BindPersistent registers flags shared by every subcommand.
func BindPersistent(fs *pflag.FlagSet, o *Options) {
	def := config.Default()
	fs.StringVarP(&o.ConfigFile, "config", "c", "", "YAML config file")
	fs.StringVar(&o.WorkDir, "work-dir", def.WorkDir, "dataset cache directory (<dir>/assemblies/<accession>/ncbi_dataset)")
	fs.StringVar(&o.Curation, "curation", def.Curation, "curation CSV (missing file = no overrides)")
	fs.StringVar(&o.LogLevel, "log-level", def.LogLevel, "debug|info|warn|error")
	fs.StringVar(&o.LogFormat, "log-format", def.LogFormat, "text|logfmt|json")
	fs.StringVar(&o.LogFile, "log-file", "", "write logs to a rotating file instead of stderr")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "shorthand for --log-level debug")
}

// BindRun registers flags of the batch command.
func BindRun(fs *pflag.FlagSet, o *Options) {
	def := config.Default()
	fs.StringVarP(&o.InputTable, "input", "i", def.InputTable, "reference table (.json array or CSV)")
	fs.StringVarP(&o.OutJSON, "out-json", "o", def.OutJSON, "output JSON array")
	fs.StringVar(&o.OutCSV, "out-csv", "", "also write a CSV table")
	fs.StringVarP(&o.Format, "format", "f", "", "also print records to stdout: json|jsonl|csv|table")
	fs.BoolVar(&o.NoAppendCuration, "no-append-curation", false, "do not append stub rows for uncurated accessions")
	fs.IntVarP(&o.Limit, "limit", "n", 0, "process at most N reference rows (0 = all)")
}

// Apply copies the flags that changed reports as set onto c.
func (o Options) Apply(c *config.Config, changed func(name string) bool) {
	set := func(name string, dst *string, v string) {
		if changed(name) {
			*dst = v
		}
	}
	set("input", &c.InputTable, o.InputTable)
	set("work-dir", &c.WorkDir, o.WorkDir)
	set("curation", &c.Curation, o.Curation)
	set("out-json", &c.OutJSON, o.OutJSON)
	set("out-csv", &c.OutCSV, o.OutCSV)
	set("format", &c.Format, o.Format)
	set("log-level", &c.LogLevel, o.LogLevel)
	set("log-format", &c.LogFormat, o.LogFormat)
	set("log-file", &c.LogFile, o.LogFile)
	if changed("limit") {
		c.Limit = o.Limit
	}
	if changed("no-append-curation") {
		c.AppendCuration = !o.NoAppendCuration
	}
	if o.Verbose && !changed("log-level") {
		c.LogLevel = "debug"
	}
}
