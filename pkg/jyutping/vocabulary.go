package jyutping

// Jyutping onsets (initials), in matching order.
var defaultOnsets = []string{
	"b", "p", "m", "f", "d", "t", "n", "l", "g", "k",
	"ng", "h", "gw", "kw", "w", "z", "c", "s", "j",
}

// Jyutping rimes (finals), in matching order.
// "m" and "ng" are also onsets: syllabic nasals.
var defaultRimes = []string{
	"aa", "aai", "aau", "aam", "aan", "aang", "aap", "aat", "aak",
	"a", "ai", "au", "am", "an", "ang", "ap", "at", "ak",
	"e", "ei", "eu", "em", "eng", "ep", "et", "ek",
	"i", "iu", "im", "in", "ing", "ip", "it", "ik",
	"o", "oi", "ou", "on", "ong", "ot", "ok",
	"u", "ui", "un", "ung", "ut", "uk",
	"eoi", "eon", "eot", "oe", "oeng", "oet", "oek",
	"yu", "yun", "yut",
	"m", "ng",
}

// DefaultOnsets returns a copy of the onset vocabulary.
func DefaultOnsets() []string {
	return append([]string(nil), defaultOnsets...)
}

// DefaultRimes returns a copy of the rime vocabulary.
func DefaultRimes() []string {
	return append([]string(nil), defaultRimes...)
}

// Inventory is an ordered set of strings: membership tests plus a
// stable enumeration order.
type Inventory struct {
	items []string
	set   map[string]struct{}
}

// NewInventory builds an inventory from items, dropping repeats.
func NewInventory(items []string) *Inventory {
	inv := &Inventory{
		items: make([]string, 0, len(items)),
		set:   make(map[string]struct{}, len(items)),
	}
	for _, item := range items {
		if _, seen := inv.set[item]; seen {
			continue
		}
		inv.set[item] = struct{}{}
		inv.items = append(inv.items, item)
	}
	return inv
}

// Contains reports whether s is in the inventory.
func (inv *Inventory) Contains(s string) bool {
	_, ok := inv.set[s]
	return ok
}

// List returns the items in enumeration order.
func (inv *Inventory) List() []string {
	return append([]string(nil), inv.items...)
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// IsToneDigit reports whether r is a Jyutping tone number, 1 through 6.
func IsToneDigit(r byte) bool {
	return r >= '1' && r <= '6'
}
