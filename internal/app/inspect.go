package app

import (
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gmetrics/internal/assembly"
	"gmetrics/internal/cliutil"
	"gmetrics/internal/curation"
	"gmetrics/internal/logging"
	"gmetrics/internal/metadata"
	"gmetrics/internal/pipeline"
	"gmetrics/internal/writers"
)

func newInspectCommand(e *env) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "inspect DIR...",
		Short: "Compute metrics for assembly directories directly",
		Long: `inspect assembles each given directory (globs allowed) without a reference
table. An assembly_data_report.jsonl next to a directory is used when present.`,
		Example: "  genome-metrics inspect .genome_cache/assemblies/*/ncbi_dataset/data/GCF_*",
		Args: func(cmd *cobra.Command, args []string) error {
			return usage(cobra.MinimumNArgs(1)(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, e, args, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "json|jsonl|csv|table")
	return cmd
}

func runInspect(cmd *cobra.Command, e *env, args []string, format string) error {
	log := logging.New("inspect")
	if !slices.Contains(writers.Formats(), format) {
		return usage(errors.Errorf("unknown format %q", format))
	}
	dirs, err := cliutil.ExpandDirs(args)
	if err != nil {
		return usage(err)
	}
	cur, err := curation.Load(e.cfg.Curation)
	if err != nil {
		return err
	}

	reports := map[string]metadata.Index{}
	var recs []assembly.Record
	for _, dir := range dirs {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		parent := filepath.Dir(dir)
		meta, ok := reports[parent]
		if !ok {
			meta, err = metadata.LoadReport(filepath.Join(parent, filepath.Base(metadata.ReportFile)))
			if err != nil {
				log.Warn("unreadable assembly report", "dir", parent, "error", err)
			}
			reports[parent] = meta
		}
		rec, err := assembly.Assemble(dir, meta, cur)
		if err != nil {
			log.Warn("skipping directory", "dir", dir, "error", err)
			continue
		}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return errors.Wrap(pipeline.ErrNoRecords, "inspect")
	}
	return printRecords(e, format, recs)
}
