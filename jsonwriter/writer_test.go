package jsonwriter

import (
	"bytes"
	"errors"
	"testing"
)

func TestQuotedDoesNotEscape(t *testing.T) {
	w := New()
	w.Quoted(`has "quotes" inside`)
	if got, want := w.String(), `"has "quotes" inside"`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFloatNaN(t *testing.T) {
	w := New()
	w.Float(nan())
	if w.String() != "NaN" {
		t.Fatalf("got %s, want NaN", w.String())
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestObjectShape(t *testing.T) {
	w := New()
	w.BeginObject()
	w.Key("amount")
	w.Uint(42)
	w.Comma()
	w.Key("owner")
	w.Quoted("11111111111111111111111111111111")
	w.EndObject()
	want := `{"amount":42,"owner":"11111111111111111111111111111111"}`
	if w.String() != want {
		t.Fatalf("got %s, want %s", w.String(), want)
	}
}

func TestNewSinkStreamsToWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewSink(&buf)
	w.BeginObject()
	w.Key("amount")
	w.Uint(42)
	w.EndObject()
	if err := w.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	want := `{"amount":42}`
	if buf.String() != want {
		t.Fatalf("got %s, want %s", buf.String(), want)
	}
	if w.String() != "" {
		t.Fatalf("String() on a sink-backed writer should be empty, got %s", w.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestNewSinkStickyError(t *testing.T) {
	w := NewSink(failingWriter{})
	w.Raw("{")
	if w.Err() == nil {
		t.Fatalf("expected sticky error after failing write")
	}
	w.Raw("}")
	if w.Err() == nil {
		t.Fatalf("expected error to remain set")
	}
}
