// Package dictionary synthesizes supplementary lexical entries for
// multi-morpheme grammatical constructions the base lexicon cannot segment
// as units: だろう/でしょう, はずがない and kin, かもしれない, and the
// なければならない / てはいけない obligation family. The synthesized set is
// installed into the host tokenizer as a user dictionary.
package dictionary

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"abcparse/lexicon"
	"abcparse/model"
)

// Set is a deduplicated collection of synthesized entries, keyed by full
// field-tuple equality.
type Set map[model.LexEntry]struct{}

// Sorted returns the entries ordered by surface, then base form, then the
// remaining fields, for reproducible dumps.
func (s Set) Sorted() []model.LexEntry {
	out := make([]model.LexEntry, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Surface != b.Surface {
			return a.Surface < b.Surface
		}
		if a.BaseForm != b.BaseForm {
			return a.BaseForm < b.BaseForm
		}
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.CSV() < b.CSV()
	})
	return out
}

// Dictionary synthesizes and caches the supplementary entries for one base
// lexicon snapshot. Classification over a full system lexicon dominates the
// cost, so the result is computed once per Dictionary and reused; the handle
// is safe for concurrent use and the returned set must not be mutated.
type Dictionary struct {
	lex  []model.LexEntry
	once sync.Once
	set  Set
}

// New returns a Dictionary over the given lexicon snapshot. The snapshot is
// not copied; callers must not mutate it afterwards.
func New(lex []model.LexEntry) *Dictionary {
	return &Dictionary{lex: lex}
}

// Entries returns the synthesized entry set, computing it on first call.
// A lexicon missing some required class simply contributes fewer entries;
// the supplementary dictionary is an enhancement and synthesis never fails.
func (d *Dictionary) Entries() Set {
	d.once.Do(func() {
		d.set = synthesize(lexicon.Classify(d.lex))
	})
	return d.set
}

// synthesize runs the construction generators in dependency order and
// collects the terminal outputs into one deduplicated set.
func synthesize(cl lexicon.Classes) Set {
	masen := genMasen(cl)
	negPred := genNegPredicate(cl, masen)
	naranai := genNaranai(cl, masen)
	ikenai := genIkenai(cl, masen)

	set := make(Set)
	add := func(entries []model.LexEntry) {
		for _, e := range entries {
			set[e] = struct{}{}
		}
	}
	add(genDarou(cl))
	add(genHazu(cl, negPred))
	add(genKamoshirenai(cl))
	add(genObligation(cl, naranai, ikenai))
	return set
}

// DumpCSV writes the synthesized set one entry per line in the ten-field
// comma-separated diagnostic form, sorted.
func (d *Dictionary) DumpCSV(w io.Writer) error {
	for _, e := range d.Entries().Sorted() {
		if _, err := fmt.Fprintln(w, e.CSV()); err != nil {
			return fmt.Errorf("dictionary dump: %w", err)
		}
	}
	return nil
}
