package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/jyutserve/pkg/jyutping"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var decompositionStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})

// InputHandler reads queries line by line and prints a report for each.
type InputHandler struct {
	engine            jyutping.Lookuper
	in                io.Reader
	out               io.Writer
	showDecomposition bool
	color             bool
	requestCount      int
}

// NewInputHandler creates an input handler reading from in and
// printing reports to out.
func NewInputHandler(engine jyutping.Lookuper, in io.Reader, out io.Writer, showDecomposition, color bool) *InputHandler {
	return &InputHandler{
		engine:            engine,
		in:                in,
		out:               out,
		showDecomposition: showDecomposition,
		color:             color,
	}
}

// Start begins the interface loop. It returns nil once the input is
// exhausted and the read error otherwise.
func (h *InputHandler) Start() error {
	reader := bufio.NewReader(h.in)
	fmt.Fprintln(h.out, "type a Jyutping syllable, initial or final and press Enter (Ctrl+C to exit):")

	for {
		fmt.Fprint(h.out, "> ")
		line, err := reader.ReadString('\n')
		if query := strings.TrimSpace(line); query != "" {
			h.handleInput(query)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d queries", h.requestCount)
				return nil
			}
			return err
		}
	}
}

// handleInput looks up a single query and prints the report.
func (h *InputHandler) handleInput(query string) {
	h.requestCount++

	start := time.Now()
	res := h.engine.Lookup(query)
	log.Debugf("Took [ %v ] for query '%s'", time.Since(start), query)

	if h.showDecomposition {
		if syl, ok := h.engine.Decompose(query); ok {
			line := fmt.Sprintf("  Syllable: %s", syl)
			if h.color {
				line = decompositionStyle.Render(line)
			}
			fmt.Fprintln(h.out, line)
		}
	}
	Report(h.out, query, res)
}
