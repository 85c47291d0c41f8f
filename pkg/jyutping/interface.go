package jyutping

// Lookuper is the query surface shared by the CLI and the IPC server.
type Lookuper interface {
	// Lookup returns exact, onset and rime matches for a query.
	Lookup(query string) Result

	// Decompose splits a query into onset, rime and tone.
	Decompose(query string) (Syllable, bool)

	// Onsets, Rimes and Syllables are read-only snapshots for reporting.
	Onsets() []string
	Rimes() []string
	Syllables() []string

	// Stats returns counts about the loaded data.
	Stats() map[string]int
}

var _ Lookuper = (*Engine)(nil)
