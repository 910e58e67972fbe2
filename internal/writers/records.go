package writers

import "gmetrics/internal/output"

func init() {
	Register("json", output.WriteJSON)
	Register("csv", output.WriteCSV)
	Register("table", output.WriteTable)
	Register("jsonl", WriteJSONL)
}
