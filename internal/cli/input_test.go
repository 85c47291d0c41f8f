package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestInputHandler(t *testing.T) {
	in := strings.NewReader("faa1\n\n   \nB\nxyz")
	var out bytes.Buffer

	handler := NewInputHandler(sampleEngine(), in, &out, true, false)
	if err := handler.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if handler.requestCount != 3 {
		t.Errorf("expected 3 queries, got %d", handler.requestCount)
	}

	got := out.String()
	for _, want := range []string{
		"  Syllable: f|aa|1\nResults for 'faa1':",
		"Results for 'B':\n  Exact match: None\n  Same initial: ['巴', '爸']",
		"No characters found for 'xyz'",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Syllable: |b") || strings.Contains(got, "Results for ''") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestInputHandlerHidesDecomposition(t *testing.T) {
	var out bytes.Buffer
	handler := NewInputHandler(sampleEngine(), strings.NewReader("faa1\n"), &out, false, false)
	if err := handler.Start(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Syllable:") {
		t.Errorf("decomposition should be hidden:\n%s", out.String())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestInputHandlerReadError(t *testing.T) {
	handler := NewInputHandler(sampleEngine(), failingReader{}, &bytes.Buffer{}, false, false)
	if err := handler.Start(); err == nil || err.Error() != "boom" {
		t.Errorf("expected read error, got %v", err)
	}
}
