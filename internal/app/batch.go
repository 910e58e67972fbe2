package app

import (
	"bufio"
	"context"
	"io"

	"github.com/pkg/errors"

	"gmetrics/internal/assembly"
	"gmetrics/internal/curation"
	"gmetrics/internal/dataset"
	"gmetrics/internal/jsonutil"
	"gmetrics/internal/logging"
	"gmetrics/internal/output"
	"gmetrics/internal/pipeline"
	"gmetrics/internal/reference"
	"gmetrics/internal/writers"
)

func runBatch(ctx context.Context, e *env) error {
	log := logging.New("app")
	cfg := e.cfg

	rows, err := reference.Load(cfg.InputTable)
	if err != nil {
		return usage(err)
	}
	if rows == nil {
		log.Warn("reference table not found", "path", cfg.InputTable)
	}
	cur, err := curation.Load(cfg.Curation)
	if err != nil {
		return err
	}

	recs, st, err := pipeline.Run(ctx, pipeline.Config{Limit: cfg.Limit}, rows, dataset.Cache{WorkDir: cfg.WorkDir}, cur)
	log.Info("batch finished", "rows", st.Rows, "records", st.Emitted, "skipped", st.Skipped, "failed", st.Failed)
	if err != nil {
		return err
	}

	if err := jsonutil.WriteFile(cfg.OutJSON, func(w io.Writer) error { return output.WriteJSON(w, recs) }); err != nil {
		return errors.Wrapf(err, "write %s", cfg.OutJSON)
	}
	log.Info("wrote records", "path", cfg.OutJSON, "count", len(recs))

	if cfg.OutCSV != "" {
		if err := jsonutil.WriteFile(cfg.OutCSV, func(w io.Writer) error { return output.WriteCSV(w, recs) }); err != nil {
			return errors.Wrapf(err, "write %s", cfg.OutCSV)
		}
		log.Info("wrote csv", "path", cfg.OutCSV)
	}

	if cfg.AppendCuration && cfg.Curation != "" {
		n, err := curation.AppendMissing(cfg.Curation, stubs(recs))
		if err != nil {
			return err
		}
		if n > 0 {
			log.Info("appended curation stubs", "path", cfg.Curation, "rows", n)
		}
	}

	return printRecords(e, cfg.Format, recs)
}

func stubs(recs []assembly.Record) []curation.Stub {
	out := make([]curation.Stub, 0, len(recs))
	for _, r := range recs {
		out = append(out, curation.Stub{Accession: r.Accession, Species: r.Species})
	}
	return out
}

// printRecords writes recs to stdout in format; "" prints nothing.
func printRecords(e *env, format string, recs []assembly.Record) error {
	if format == "" {
		return nil
	}
	bw := bufio.NewWriter(e.stdout)
	if err := writers.Write(format, bw, recs); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		return err
	}
	return nil
}
