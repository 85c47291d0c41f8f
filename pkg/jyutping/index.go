package jyutping

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// keyIndex maps store keys to their store positions in a patricia trie.
// Suffix scans use a second index built over rune-reversed keys.
type keyIndex struct {
	trie     *patricia.Trie
	reversed bool
}

func newKeyIndex(keys []string, reversed bool) *keyIndex {
	idx := &keyIndex{trie: patricia.NewTrie(), reversed: reversed}
	for pos, key := range keys {
		// an empty key can never carry a non-empty onset or rime
		if key == "" {
			continue
		}
		idx.trie.Insert(idx.prefix(key), pos)
	}
	return idx
}

func (idx *keyIndex) prefix(s string) patricia.Prefix {
	if idx.reversed {
		return patricia.Prefix(reverse(s))
	}
	return patricia.Prefix(s)
}

// positions returns the store positions of every key under s, ascending.
func (idx *keyIndex) positions(s string) []int {
	var positions []int
	err := idx.trie.VisitSubtree(idx.prefix(s), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.(int))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting key index for %q: %v", s, err)
		return nil
	}
	sort.Ints(positions)
	return positions
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
