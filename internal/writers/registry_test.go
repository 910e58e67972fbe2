package writers

import (
	"bytes"
	"strings"
	"testing"

	"gmetrics/internal/assembly"
)

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "csv,json,jsonl,table" {
		t.Fatalf("formats = %q", got)
	}
}

func TestJSONLOneLinePerRecord(t *testing.T) {
	var b bytes.Buffer
	list := []assembly.Record{{Accession: "GCF_1", Species: "A"}, {Accession: "GCF_2", Species: "B"}}
	if err := Write("jsonl", &b, list); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %q", len(lines), b.String())
	}
	if !strings.Contains(lines[1], `"assembly_accession":"GCF_2"`) {
		t.Fatalf("unexpected line: %s", lines[1])
	}
}
