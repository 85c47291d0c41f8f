// Package cli prints lookup results and runs the interactive query loop.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/jyutserve/internal/utils"
	"github.com/bastiangx/jyutserve/pkg/jyutping"
)

// Usage writes the command usage text to w.
func Usage(w io.Writer, prog, dataFile string) {
	fmt.Fprintf(w, "Usage: %s [flags] <jyutping_query>\n", prog)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s fi\n", prog)
	fmt.Fprintf(w, "  %s f\n", prog)
	fmt.Fprintf(w, "  %s i\n", prog)
	fmt.Fprintf(w, "\nNote: Characters are stored in %s\n", dataFile)
	fmt.Fprintf(w, "Edit %s directly to add characters\n", dataFile)
}

// Report writes the three result categories for query, followed by the
// number of distinct characters across all of them.
func Report(w io.Writer, query string, res jyutping.Result) {
	fmt.Fprintf(w, "Results for '%s':\n", query)
	fmt.Fprintf(w, "  Exact match: %s\n", formatChars(res.Exact))
	fmt.Fprintf(w, "  Same initial: %s\n", formatChars(res.Initial))
	fmt.Fprintf(w, "  Same final: %s\n", formatChars(res.Final))

	if res.Empty() {
		fmt.Fprintf(w, "\nNo characters found for '%s'\n", query)
		return
	}
	total := utils.UniqueCount(res.Exact, res.Initial, res.Final)
	fmt.Fprintf(w, "\nTotal unique characters found: %d\n", total)
}

// Info writes the vocabularies and the number of stored syllables.
func Info(w io.Writer, engine jyutping.Lookuper) {
	fmt.Fprintf(w, "Available initials: %s\n", formatChars(engine.Onsets()))
	fmt.Fprintf(w, "Available finals: %s\n", formatChars(engine.Rimes()))
	fmt.Fprintf(w, "Total combinations available: %d\n", len(engine.Syllables()))
}

// formatChars renders a list as ['a', 'b'], or None when empty.
func formatChars(chars []string) string {
	if len(chars) == 0 {
		return "None"
	}
	quoted := make([]string, len(chars))
	for i, c := range chars {
		quoted[i] = "'" + c + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
