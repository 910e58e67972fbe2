package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"gmetrics/internal/assembly"
	"gmetrics/internal/curation"
	"gmetrics/internal/dataset"
	"gmetrics/internal/logging"
	"gmetrics/internal/metadata"
	"gmetrics/internal/reference"
)

// ErrNoRecords is returned when a batch yields no records at all.
var ErrNoRecords = errors.New("no assemblies produced metrics; check that datasets include genome and gff3 files")

// Config controls a batch.
type Config struct {
	Limit int // process at most this many reference rows; 0 = all
}

// Stats summarizes a batch.
type Stats struct {
	Rows    int // reference rows considered
	Emitted int // records produced
	Skipped int // rows without accession, dataset, or complete files
	Failed  int // rows whose inputs could not be read or parsed
}

// ForEachRecord builds a record per reference row and calls visit for each,
// in table order. It returns the first visit error or ctx's error; per-row
// failures are counted, logged, and skipped.
func ForEachRecord(
	ctx context.Context,
	cfg Config,
	rows []reference.Row,
	fetch dataset.Fetcher,
	cur *curation.Store,
	visit func(assembly.Record) error,
) (Stats, error) {
	log := logging.New("pipeline")
	if cfg.Limit > 0 && cfg.Limit < len(rows) {
		rows = rows[:cfg.Limit]
	}

	var st Stats
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		st.Rows++

		acc := row.Accession()
		if acc == "" {
			log.Info("reference row without accession", "row", i+1)
			st.Skipped++
			continue
		}

		rec, err := buildOne(ctx, acc, fetch, cur)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return st, err
		case errors.Is(err, dataset.ErrNotFound), errors.Is(err, assembly.ErrIncomplete), errors.Is(err, errNoAssembly):
			log.Info("skipping assembly", "accession", acc, "reason", err)
			st.Skipped++
			continue
		case err != nil:
			log.Warn("assembly failed", "accession", acc, "error", err)
			st.Failed++
			continue
		}

		if err := visit(rec.WithPassthrough(row)); err != nil {
			return st, err
		}
		st.Emitted++
	}
	return st, nil
}

// Run collects every record. It returns ErrNoRecords when none were built.
func Run(
	ctx context.Context,
	cfg Config,
	rows []reference.Row,
	fetch dataset.Fetcher,
	cur *curation.Store,
) ([]assembly.Record, Stats, error) {
	var out []assembly.Record
	st, err := ForEachRecord(ctx, cfg, rows, fetch, cur, func(r assembly.Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return out, st, err
	}
	if len(out) == 0 {
		return nil, st, ErrNoRecords
	}
	return out, st, nil
}

var errNoAssembly = errors.New("dataset has no assembly directories")

func buildOne(ctx context.Context, accession string, fetch dataset.Fetcher, cur *curation.Store) (assembly.Record, error) {
	ds, err := fetch.Resolve(ctx, accession)
	if err != nil {
		return assembly.Record{}, err
	}
	meta, err := metadata.LoadReport(ds.ReportPath())
	if err != nil {
		return assembly.Record{}, err
	}
	dir, exact, err := dataset.SelectAssemblyDir(ds.Root, accession)
	if err != nil {
		return assembly.Record{}, err
	}
	if dir == "" {
		return assembly.Record{}, errors.Wrap(errNoAssembly, ds.Root)
	}
	if !exact {
		logging.New("pipeline").Debug("no directory named after accession; using first assembly", "accession", accession, "dir", dir)
	}
	return assembly.Assemble(dir, meta, cur)
}
