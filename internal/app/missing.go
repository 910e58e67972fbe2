package app

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gmetrics/internal/curation"
	"gmetrics/internal/output"
)

func newMissingCommand(e *env) *cobra.Command {
	var appendStubs bool
	cmd := &cobra.Command{
		Use:   "missing [OUTPUT_JSON]",
		Short: "List output accessions that have no curation row",
		Long: `missing reads a records JSON (default: the configured --out-json) and prints
each accession absent from the curation CSV, one per line, in output order.
With --append, stub rows are added to the curation file as well.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return usage(cobra.MaximumNArgs(1)(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.cfg.OutJSON
			if len(args) == 1 {
				path = args[0]
			}
			return runMissing(e, path, appendStubs)
		},
	}
	cmd.Flags().BoolVar(&appendStubs, "append", false, "append stub rows for the missing accessions")
	return cmd
}

func runMissing(e *env, path string, appendStubs bool) error {
	fh, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open records")
	}
	defer fh.Close()
	recs, err := output.ReadJSON(fh)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	cur, err := curation.Load(e.cfg.Curation)
	if err != nil {
		return err
	}

	accs := make([]string, 0, len(recs))
	species := make(map[string]string, len(recs))
	for _, r := range recs {
		accs = append(accs, r.AssemblyAccession)
		species[r.AssemblyAccession] = r.Species
	}
	missing := cur.Missing(accs)
	for _, acc := range missing {
		fmt.Fprintln(e.stdout, acc)
	}

	if appendStubs && len(missing) > 0 {
		stubs := make([]curation.Stub, 0, len(missing))
		for _, acc := range missing {
			stubs = append(stubs, curation.Stub{Accession: acc, Species: species[acc]})
		}
		if _, err := curation.AppendMissing(e.cfg.Curation, stubs); err != nil {
			return err
		}
	}
	return nil
}
