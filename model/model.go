package model

import (
	"fmt"
	"strconv"
	"strings"
)

// IDUnspecified marks a connection identifier that the source lexicon left
// blank. Connection ids are opaque to this module; they are only ever copied.
const IDUnspecified = -1

// LexEntry is one lexical entry in the ten-field shape shared by the base
// lexicon and the synthesized supplementary dictionary. It is a plain value:
// two entries are the same entry exactly when all fields are equal, which is
// what the synthesis driver dedups on.
type LexEntry struct {
	Surface      string `json:"surface"`
	LeftID       int    `json:"left_id"`
	RightID      int    `json:"right_id"`
	Cost         int    `json:"cost"`
	PartOfSpeech string `json:"part_of_speech"`
	InflType     string `json:"infl_type"`
	InflForm     string `json:"infl_form"`
	BaseForm     string `json:"base_form"`
	Reading      string `json:"reading"`
	Phonetic     string `json:"phonetic"`
}

// Affix is the orthographic material of a morpheme without a lexicon entry of
// its own, e.g. the case particles spliced into はずがない. Compounding glues
// its four fields onto the corresponding fields of an entry.
type Affix struct {
	Surface  string
	BaseForm string
	Reading  string
	Phonetic string
}

// AsAffix views an entry as compounding material.
func (e LexEntry) AsAffix() Affix {
	return Affix{
		Surface:  e.Surface,
		BaseForm: e.BaseForm,
		Reading:  e.Reading,
		Phonetic: e.Phonetic,
	}
}

// WithPrefix returns a copy of e compounded behind the given prefix parts:
// surface, base form, reading and phonetic become the concatenation of the
// parts followed by e's own, and left_id is taken over from leftmost. The
// head e keeps right_id, part of speech and inflection unchanged; those
// describe the compound's right edge and are deliberately not recomputed.
func (e LexEntry) WithPrefix(leftmost LexEntry, rest ...Affix) LexEntry {
	parts := append([]Affix{leftmost.AsAffix()}, rest...)
	out := e
	out.LeftID = leftmost.LeftID
	var surf, base, read, phon strings.Builder
	for _, p := range parts {
		surf.WriteString(p.Surface)
		base.WriteString(p.BaseForm)
		read.WriteString(p.Reading)
		phon.WriteString(p.Phonetic)
	}
	out.Surface = surf.String() + e.Surface
	out.BaseForm = base.String() + e.BaseForm
	out.Reading = read.String() + e.Reading
	out.Phonetic = phon.String() + e.Phonetic
	return out
}

// WithSuffix returns a copy of e with the affix appended to its surface,
// base form, reading and phonetic. Connection ids stay put: the suffixed
// material is particle-sized and the entry keeps anchoring the compound.
func (e LexEntry) WithSuffix(a Affix) LexEntry {
	out := e
	out.Surface += a.Surface
	out.BaseForm += a.BaseForm
	out.Reading += a.Reading
	out.Phonetic += a.Phonetic
	return out
}

// WithCostBias returns a copy of e with bias added to its cost. The driver
// applies a large negative bias to terminal compounds so the lattice path
// through the whole construction undercuts any piecemeal segmentation.
func (e LexEntry) WithCostBias(bias int) LexEntry {
	out := e
	out.Cost += bias
	return out
}

// CSV renders the entry in the ten-field comma-separated diagnostic form.
func (e LexEntry) CSV() string {
	return strings.Join([]string{
		e.Surface,
		formatID(e.LeftID),
		formatID(e.RightID),
		strconv.Itoa(e.Cost),
		e.PartOfSpeech,
		e.InflType,
		e.InflForm,
		e.BaseForm,
		e.Reading,
		e.Phonetic,
	}, ", ")
}

func formatID(id int) string {
	if id == IDUnspecified {
		return ""
	}
	return strconv.Itoa(id)
}

// EntryFromRecord builds a LexEntry from one raw lexicon record. Two shapes
// are accepted: the native ten-field shape, and the thirteen-field
// IPADIC-style CSV row whose four part-of-speech columns are joined back into
// a single comma-delimited path. Blank or starred connection ids parse to
// IDUnspecified.
func EntryFromRecord(fields []string) (LexEntry, error) {
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	switch len(fields) {
	case 10:
		return entryFrom10(fields)
	case 13:
		joined := make([]string, 0, 10)
		joined = append(joined, fields[0:4]...)
		joined = append(joined, strings.Join(fields[4:8], ","))
		joined = append(joined, fields[8:13]...)
		return entryFrom10(joined)
	default:
		return LexEntry{}, fmt.Errorf("lexical record: want 10 or 13 fields, got %d", len(fields))
	}
}

func entryFrom10(fields []string) (LexEntry, error) {
	leftID, err := parseID(fields[1])
	if err != nil {
		return LexEntry{}, fmt.Errorf("left_id: %w", err)
	}
	rightID, err := parseID(fields[2])
	if err != nil {
		return LexEntry{}, fmt.Errorf("right_id: %w", err)
	}
	cost, err := strconv.Atoi(fields[3])
	if err != nil {
		return LexEntry{}, fmt.Errorf("cost: %w", err)
	}
	return LexEntry{
		Surface:      fields[0],
		LeftID:       leftID,
		RightID:      rightID,
		Cost:         cost,
		PartOfSpeech: fields[4],
		InflType:     fields[5],
		InflForm:     fields[6],
		BaseForm:     fields[7],
		Reading:      fields[8],
		Phonetic:     fields[9],
	}, nil
}

func parseID(s string) (int, error) {
	if s == "" || s == "*" {
		return IDUnspecified, nil
	}
	return strconv.Atoi(s)
}

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	Text           string `json:"text"`
	Lemma          string `json:"lemma,omitempty"`
	POS            string `json:"pos,omitempty"`
	Start          int    `json:"start"`
	End            int    `json:"end"`
	Reading        string `json:"reading,omitempty"`
	Pronunciation  string `json:"pronunciation,omitempty"`
	TokenID        int    `json:"token_id,omitempty"`
	InflectionType string `json:"inflection_type,omitempty"`
	InflectionForm string `json:"inflection_form,omitempty"`
	FromUserDict   bool   `json:"from_user_dict,omitempty"`
}
