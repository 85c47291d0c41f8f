/*
Package jyutping finds Cantonese characters that share a pronunciation
feature with a Jyutping query.

A query can be a full syllable ("faa1"), an onset ("f") or a rime ("aa").
Lookup answers with three lists:

	res := engine.Lookup("faa1")
	res.Exact   // characters stored under the tone-less syllable "faa"
	res.Initial // characters whose syllable starts with the query's onset(s)
	res.Final   // characters whose syllable ends with the query's rime(s)

Only the exact strategy strips the tone digit. Onset and rime matching use
the normalized query as typed, so "faa1" shares its onset with "faa" and
"fi" but has no rime match: no rime ends in "1".

An Engine is immutable once built and can be shared between goroutines.
To pick up edits to the backing file, build a new Engine.
*/
package jyutping

import (
	"strings"

	"github.com/bastiangx/jyutserve/pkg/store"
	"github.com/charmbracelet/log"
)

// Result holds the three match lists of a lookup. Lists are never nil.
type Result struct {
	Exact   []string `msgpack:"e" json:"exact"`
	Initial []string `msgpack:"i" json:"initial"`
	Final   []string `msgpack:"f" json:"final"`
}

// Empty reports whether all three lists are empty.
func (r Result) Empty() bool {
	return len(r.Exact) == 0 && len(r.Initial) == 0 && len(r.Final) == 0
}

// Engine owns the vocabularies and a snapshot of the syllable store.
type Engine struct {
	onsets *Inventory
	rimes  *Inventory

	keys  []string
	chars [][]string
	byKey map[string]int

	prefixes *keyIndex
	suffixes *keyIndex

	malformed int
}

// New builds an engine over the store at path.
// A missing or unparsable store gives an engine with no syllables.
func New(path string) *Engine {
	return NewFromStore(store.LoadOrEmpty(path))
}

// NewFromStore builds an engine over a snapshot of s.
// Later changes to s are not seen by the engine.
func NewFromStore(s *store.Store) *Engine {
	if s == nil {
		s = store.New()
	}
	e := &Engine{
		onsets: NewInventory(defaultOnsets),
		rimes:  NewInventory(defaultRimes),
		byKey:  make(map[string]int, s.Len()),
	}

	for _, entry := range s.Entries() {
		e.byKey[entry.Key] = len(e.keys)
		e.keys = append(e.keys, entry.Key)
		e.chars = append(e.chars, entry.Chars)

		if _, ok := e.decompose(entry.Key); !ok {
			e.malformed++
		}
	}
	e.prefixes = newKeyIndex(e.keys, false)
	e.suffixes = newKeyIndex(e.keys, true)

	if e.malformed > 0 {
		log.Debugf("Store has %d keys that are not onset+rime syllables", e.malformed)
	}
	log.Debugf("Engine ready: onsets=[%d], rimes=[%d], syllables=[%d]",
		e.onsets.Len(), e.rimes.Len(), len(e.keys))
	return e
}

// NormalizeQuery trims surrounding whitespace and lower-cases raw.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// StripTone removes one trailing tone digit, if present.
func StripTone(syllable string) string {
	if n := len(syllable); n > 0 && IsToneDigit(syllable[n-1]) {
		return syllable[:n-1]
	}
	return syllable
}

// Lookup runs the exact, onset and rime strategies on one normalized query.
func (e *Engine) Lookup(query string) Result {
	q := NormalizeQuery(query)
	return Result{
		Exact:   e.exactMatch(q),
		Initial: e.onsetMatch(q),
		Final:   e.rimeMatch(q),
	}
}

// ExactMatch returns a copy of the characters stored under the
// tone-less query.
func (e *Engine) ExactMatch(query string) []string {
	return e.exactMatch(NormalizeQuery(query))
}

// OnsetMatch returns the characters of every syllable sharing an onset
// with the query. An onset query collects its own syllables; any other
// query collects once per vocabulary onset it starts with.
func (e *Engine) OnsetMatch(query string) []string {
	return e.onsetMatch(NormalizeQuery(query))
}

// RimeMatch is OnsetMatch for rimes, matching on suffixes.
func (e *Engine) RimeMatch(query string) []string {
	return e.rimeMatch(NormalizeQuery(query))
}

func (e *Engine) exactMatch(q string) []string {
	pos, ok := e.byKey[StripTone(q)]
	if !ok {
		return []string{}
	}
	return append([]string{}, e.chars[pos]...)
}

func (e *Engine) onsetMatch(q string) []string {
	if e.onsets.Contains(q) {
		return e.collect(e.prefixes, q)
	}
	out := []string{}
	for _, onset := range e.onsets.items {
		if strings.HasPrefix(q, onset) {
			out = append(out, e.collect(e.prefixes, onset)...)
		}
	}
	return out
}

func (e *Engine) rimeMatch(q string) []string {
	if e.rimes.Contains(q) {
		return e.collect(e.suffixes, q)
	}
	out := []string{}
	for _, rime := range e.rimes.items {
		if strings.HasSuffix(q, rime) {
			out = append(out, e.collect(e.suffixes, rime)...)
		}
	}
	return out
}

// collect concatenates, in store order, the characters of every key
// under part in idx.
func (e *Engine) collect(idx *keyIndex, part string) []string {
	out := []string{}
	for _, pos := range idx.positions(part) {
		out = append(out, e.chars[pos]...)
	}
	return out
}

// Onsets returns the onset vocabulary in matching order.
func (e *Engine) Onsets() []string {
	return e.onsets.List()
}

// Rimes returns the rime vocabulary in matching order.
func (e *Engine) Rimes() []string {
	return e.rimes.List()
}

// Syllables returns the store keys in store order.
func (e *Engine) Syllables() []string {
	return append([]string(nil), e.keys...)
}

// Stats returns counts about the loaded data.
func (e *Engine) Stats() map[string]int {
	chars := 0
	for _, list := range e.chars {
		chars += len(list)
	}
	return map[string]int{
		"onsets":        e.onsets.Len(),
		"rimes":         e.rimes.Len(),
		"syllables":     len(e.keys),
		"characters":    chars,
		"malformedKeys": e.malformed,
	}
}
