package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/jyutserve/pkg/jyutping"
	"github.com/bastiangx/jyutserve/pkg/store"
	"github.com/google/go-cmp/cmp"
)

func sampleEngine() *jyutping.Engine {
	s := store.New()
	s.Set("faa", []string{"花"})
	s.Set("fi", nil)
	s.Set("baa", []string{"巴", "爸"})
	return jyutping.NewFromStore(s)
}

func TestReport(t *testing.T) {
	engine := sampleEngine()

	testCases := []struct {
		query    string
		expected string
	}{
		{"faa1", `Results for 'faa1':
  Exact match: ['花']
  Same initial: ['花']
  Same final: None

Total unique characters found: 1
`},
		{"faa", `Results for 'faa':
  Exact match: ['花']
  Same initial: ['花']
  Same final: ['花', '巴', '爸', '花', '巴', '爸']

Total unique characters found: 3
`},
		{"xyz", `Results for 'xyz':
  Exact match: None
  Same initial: None
  Same final: None

No characters found for 'xyz'
`},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		Report(&buf, tc.query, engine.Lookup(tc.query))
		if diff := cmp.Diff(tc.expected, buf.String()); diff != "" {
			t.Errorf("Report(%q) mismatch (-want +got):\n%s", tc.query, diff)
		}
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, "jyutserve", "characters.json")
	out := buf.String()
	for _, want := range []string{"Usage: jyutserve [flags] <jyutping_query>", "  jyutserve fi", "Edit characters.json directly"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	Info(&buf, sampleEngine())
	out := buf.String()
	if !strings.HasPrefix(out, "Available initials: ['b', 'p', 'm',") {
		t.Errorf("unexpected initials line:\n%s", out)
	}
	if !strings.Contains(out, "'yut', 'm', 'ng']") {
		t.Errorf("finals should end with the nasals:\n%s", out)
	}
	if !strings.HasSuffix(out, "Total combinations available: 3\n") {
		t.Errorf("unexpected count line:\n%s", out)
	}
}
