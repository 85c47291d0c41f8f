/*
Package store holds the syllable to characters mapping that backs lookups.

A Store is an ordered map: keys keep the order in which they were first seen
in the backing file, and every lookup strategy that scans the store reports
characters in that order. Values are CharacterSets, plain ordered lists of
characters that may contain duplicates.

The canonical backing file is a UTF-8 JSON object:

	{ "baa": ["巴", "爸"], "fi": [] }

A compact msgpack encoding of the same data is also supported, see formats.go.
*/
package store

import (
	"fmt"
	"os"

	"github.com/bastiangx/jyutserve/internal/utils"
	"github.com/charmbracelet/log"
)

// Entry is a single base syllable and its characters.
type Entry struct {
	Key   string   `msgpack:"k"`
	Chars []string `msgpack:"c"`
}

// Store is an insertion-ordered mapping from base syllable to characters.
// It is not safe for concurrent mutation.
type Store struct {
	keys    []string
	entries map[string][]string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		entries: make(map[string][]string),
	}
}

// Set assigns chars to key. A new key is appended to the key order,
// an existing key keeps its position and gets the new value.
func (s *Store) Set(key string, chars []string) {
	if _, exists := s.entries[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = cloneChars(chars)
}

// Get returns a copy of the characters stored under key.
func (s *Store) Get(key string) ([]string, bool) {
	chars, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return cloneChars(chars), true
}

// Has reports whether key is present, even with an empty list.
func (s *Store) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Keys returns the keys in store order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return len(s.keys)
}

// Entries returns a copy of every entry in store order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, key := range s.keys {
		entries = append(entries, Entry{Key: key, Chars: cloneChars(s.entries[key])})
	}
	return entries
}

// CharCount returns the total number of characters over all entries,
// duplicates included.
func (s *Store) CharCount() int {
	total := 0
	for _, chars := range s.entries {
		total += len(chars)
	}
	return total
}

// Load reads a store from path, choosing the decoder by file extension.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}
	defer file.Close()

	format := DetectFormat(path)
	s, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store %s: %w", path, err)
	}
	if info, ok := GetFormatInfo(format); ok {
		log.Debugf("Loaded %s %s: %d syllables", info.Description, path, s.Len())
	}
	return s, nil
}

// LoadOrEmpty is Load without failure: a missing, unreadable or
// unparsable file gives an empty store.
func LoadOrEmpty(path string) *Store {
	if path == "" || !utils.FileExists(path) {
		log.Debugf("No store at %q, starting empty", path)
		return New()
	}
	s, err := Load(path)
	if err != nil {
		log.Warnf("Store unavailable: %v. Starting with an empty store...", err)
		return New()
	}
	return s
}

// Save writes the store to path in the format implied by its extension.
func (s *Store) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create store %s: %w", path, err)
	}
	defer file.Close()

	if err := Encode(file, s, DetectFormat(path)); err != nil {
		return fmt.Errorf("failed to write store %s: %w", path, err)
	}
	return nil
}

// Skeleton returns a store holding every onset+rime combination with an
// empty character list, onset-major.
func Skeleton(onsets, rimes []string) *Store {
	s := New()
	for _, onset := range onsets {
		for _, rime := range rimes {
			s.Set(onset+rime, nil)
		}
	}
	return s
}

func cloneChars(chars []string) []string {
	out := make([]string, len(chars))
	copy(out, chars)
	return out
}
