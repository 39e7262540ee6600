// Package lexicon loads base-lexicon snapshots and partitions them into the
// named morpheme classes the construction generators draw from.
package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"

	"abcparse/model"
)

// Class names a group of morphemes selected from the base lexicon.
type Class string

const (
	// Hazu is the dependent noun はず/ハズ/筈.
	Hazu Class = "hazu"
	// Ka is the sentence-final particle か.
	Ka Class = "ka"
	// NaiAdj is the negation adjective ない/無い.
	NaiAdj Class = "nai_adj"
	// NaiAux groups the negation auxiliaries ん, ない and the 特殊・ヌ ぬ.
	NaiAux Class = "nai_aux"
	// Masu is the polite auxiliary ます.
	Masu Class = "masu"
	// Aru is the independent existential verb ある/有る.
	Aru Class = "aru"
	// Naru is the dependent light verb なる/成る.
	Naru Class = "naru"
	// Iku is the dependent light verb いく/行く.
	Iku Class = "iku"
	// Ikeru is the dependent light verb いける/行ける.
	Ikeru Class = "ikeru"
	// Te is the conjunctive particle て/で.
	Te Class = "te"
	// U is the volitional auxiliary う.
	U Class = "u"
	// Daro is だ/です in irrealis form (だろ, でしょ).
	Daro Class = "daro"
)

// Predicate decides membership of an entry in a class.
type Predicate func(model.LexEntry) bool

func baseForm(expr string) Predicate {
	re := regexp.MustCompile(expr)
	return func(e model.LexEntry) bool { return re.MatchString(e.BaseForm) }
}

func pos(expr string) Predicate {
	re := regexp.MustCompile(expr)
	return func(e model.LexEntry) bool { return re.MatchString(e.PartOfSpeech) }
}

func inflType(expr string) Predicate {
	re := regexp.MustCompile(expr)
	return func(e model.LexEntry) bool { return re.MatchString(e.InflType) }
}

func inflForm(expr string) Predicate {
	re := regexp.MustCompile(expr)
	return func(e model.LexEntry) bool { return re.MatchString(e.InflForm) }
}

func all(ps ...Predicate) Predicate {
	return func(e model.LexEntry) bool {
		for _, p := range ps {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

func anyOf(ps ...Predicate) Predicate {
	return func(e model.LexEntry) bool {
		for _, p := range ps {
			if p(e) {
				return true
			}
		}
		return false
	}
}

// classDefs is the declarative classification table. It is evaluated in one
// pass over the lexicon; entries keep their lexicon order within each class.
var classDefs = []struct {
	name  Class
	match Predicate
}{
	{Hazu, all(baseForm(`^(はず|ハズ|筈)$`), pos(`^名詞,非自立`))},
	{Ka, baseForm(`^か$`)},
	{NaiAdj, all(baseForm(`^(ない|無い)$`), pos(`^形容詞`))},
	{NaiAux, anyOf(
		baseForm(`^ん$`),
		all(baseForm(`^ない$`), pos(`^助動詞`)),
		all(baseForm(`^ぬ$`), inflType(`^特殊・ヌ`)),
	)},
	{Masu, all(baseForm(`^ます`), pos(`^助動詞`))},
	{Aru, all(baseForm(`^(ある|有る)$`), pos(`^動詞,自立`))},
	{Naru, all(baseForm(`^(なる|成る)$`), pos(`^動詞,非自立`))},
	{Iku, all(baseForm(`^(いく|行く)$`), pos(`^動詞,非自立`))},
	{Ikeru, all(baseForm(`^(いける|行ける)$`), pos(`^動詞,非自立`))},
	{Te, all(baseForm(`^(て|で)$`), pos(`^助詞,接続助詞`))},
	{U, all(baseForm(`^う$`), pos(`^助動詞`))},
	{Daro, all(baseForm(`^(だ|です)$`), inflForm(`^未然形`))},
}

// Classes maps class names to the entries selected for them. A class a
// lexicon has no entries for maps to an empty slice; that is a valid result,
// not an error (e.g. the 特殊・ヌ ぬ is absent from some base lexicons).
type Classes map[Class][]model.LexEntry

// Classify partitions entries into the fixed class table in a single ordered
// pass. An entry may land in more than one class.
func Classify(entries []model.LexEntry) Classes {
	cl := make(Classes, len(classDefs))
	for _, def := range classDefs {
		cl[def.name] = nil
	}
	for _, e := range entries {
		for _, def := range classDefs {
			if def.match(e) {
				cl[def.name] = append(cl[def.name], e)
			}
		}
	}
	return cl
}

// Load reads a lexicon snapshot from IPADIC-style CSV. Both the
// thirteen-field system-dictionary row shape and the native ten-field shape
// are accepted; rows may mix.
func Load(r io.Reader) ([]model.LexEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var out []model.LexEntry
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("lexicon: %w", err)
		}
		line++
		e, err := model.EntryFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("lexicon: line %d: %w", line, err)
		}
		out = append(out, e)
	}
}

// LoadFile reads a lexicon snapshot from a CSV file on disk.
func LoadFile(path string) ([]model.LexEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	defer f.Close()
	return Load(f)
}
