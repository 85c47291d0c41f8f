package jyutping

import "fmt"

// Syllable is a query split into its Jyutping parts.
// Onset is empty for syllabic nasals and vowel-initial syllables,
// Tone is 0 when the query carries no tone digit.
type Syllable struct {
	Onset string
	Rime  string
	Tone  int
}

// Base returns the tone-less syllable, the store key granularity.
func (s Syllable) Base() string {
	return s.Onset + s.Rime
}

func (s Syllable) String() string {
	if s.Tone == 0 {
		return fmt.Sprintf("%s|%s", s.Onset, s.Rime)
	}
	return fmt.Sprintf("%s|%s|%d", s.Onset, s.Rime, s.Tone)
}

// Decompose splits a query into onset, rime and tone. It reports false
// when the tone-less query is not an optional onset followed by a rime.
// The longest onset leaving a valid rime wins, so "ngaa" is ng+aa and
// "ng" alone is the syllabic nasal rime.
func (e *Engine) Decompose(query string) (Syllable, bool) {
	return e.decompose(NormalizeQuery(query))
}

func (e *Engine) decompose(q string) (Syllable, bool) {
	var syl Syllable
	base := StripTone(q)
	if base != q {
		syl.Tone = int(q[len(q)-1] - '0')
	}
	if base == "" {
		return Syllable{}, false
	}

	best := -1
	for i, onset := range e.onsets.items {
		if len(onset) >= len(base) || base[:len(onset)] != onset {
			continue
		}
		if !e.rimes.Contains(base[len(onset):]) {
			continue
		}
		if best < 0 || len(onset) > len(e.onsets.items[best]) {
			best = i
		}
	}

	switch {
	case best >= 0:
		syl.Onset = e.onsets.items[best]
		syl.Rime = base[len(syl.Onset):]
	case e.rimes.Contains(base):
		syl.Rime = base
	default:
		return Syllable{}, false
	}
	return syl, true
}
