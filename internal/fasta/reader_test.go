package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 chromosome
ACGT
acgn
>seq2 plasmid
NNnnXY
`

func TestScanSumsRecords(t *testing.T) {
	c, err := Scan(strings.NewReader(plain))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if c.Length != 14 {
		t.Fatalf("length = %d, want 14", c.Length)
	}
	if c.GC != 4 {
		t.Fatalf("gc = %d, want 4", c.GC)
	}
	if c.N != 5 {
		t.Fatalf("n = %d, want 5", c.N)
	}
}

func TestScanLengthIsSumOfSequenceLines(t *testing.T) {
	lines := []string{">a", "GGGCCC", "AT", ">b desc", "", "ccccA", "TTTTTTTTTT"}
	c, err := Scan(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var want int64
	for _, l := range lines {
		if !strings.HasPrefix(l, ">") {
			want += int64(len(l))
		}
	}
	if c.Length != want {
		t.Fatalf("length = %d, want %d", c.Length, want)
	}
	if c.GC > c.Length {
		t.Fatalf("gc %d exceeds length %d", c.GC, c.Length)
	}
	if c.GC != 10 {
		t.Fatalf("gc = %d, want 10", c.GC)
	}
}

func TestScanIgnoresCRLF(t *testing.T) {
	c, err := Scan(strings.NewReader(">x\r\nGC\r\nAT\r\n"))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if c.Length != 4 || c.GC != 2 {
		t.Fatalf("unexpected composition: %+v", c)
	}
}

func writeGz(t *testing.T, name string, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(p)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	gw.Close()
	fh.Close()
	return p
}

func TestScanFileGzip(t *testing.T) {
	c, err := ScanFile(writeGz(t, "genomic.fna.gz", plain))
	if err != nil {
		t.Fatalf("scan gz: %v", err)
	}
	if c.Length != 14 {
		t.Fatalf("gzip length = %d, want 14", c.Length)
	}
}

func TestScanFileMissing(t *testing.T) {
	if _, err := ScanFile(filepath.Join(t.TempDir(), "missing.fna")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
