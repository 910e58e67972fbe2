package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestStartWritesLines(t *testing.T) {
	var b bytes.Buffer
	in, done := Start[int](&b, 1, func(enc *json.Encoder, v int) error { return enc.Encode(v) }, func(error) bool { return false })
	for i := 1; i <= 3; i++ {
		in <- i
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "1\n2\n3\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestStartSuppressesBrokenFlush(t *testing.T) {
	pipe := errors.New("pipe")
	in, done := Start[int](failWriter{pipe}, 1, func(enc *json.Encoder, v int) error { return enc.Encode(v) },
		func(err error) bool { return errors.Is(err, pipe) })
	in <- 1
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe should be suppressed, got %v", err)
	}
}

func TestStartReportsEncodeError(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[int](&bytes.Buffer{}, 4, func(*json.Encoder, int) error { return boom }, func(error) bool { return false })
	in <- 1
	in <- 2
	close(in)
	if err := <-done; !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}
