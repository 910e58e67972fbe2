// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"gmetrics/internal/assembly"
	"gmetrics/internal/jsonlutil"
	"gmetrics/internal/output"
)

// StartRecordJSONLWriter streams each record as one JSON line (v1).
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- assembly.Record, <-chan error) {
	return jsonlutil.Start[assembly.Record](out, bufSize,
		func(enc *json.Encoder, r assembly.Record) error {
			return enc.Encode(output.ToAPI(r))
		},
		IsBrokenPipe,
	)
}

// WriteJSONL writes a batch through StartRecordJSONLWriter.
func WriteJSONL(w io.Writer, list []assembly.Record) error {
	in, done := StartRecordJSONLWriter(w, len(list))
	for _, r := range list {
		in <- r
	}
	close(in)
	return <-done
}
