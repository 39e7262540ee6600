// Package tokenize wraps the kagome lattice tokenizer with the synthesized
// supplementary dictionary installed, so the grammatical constructions the
// dictionary covers come back as single tokens.
package tokenize

import (
	"context"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"abcparse/model"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// Config selects the system dictionary and the supplementary entries to
// install. The zero value uses the IPA dictionary with no extra entries.
type Config struct {
	// System is the system dictionary name, "ipa" (default) or "uni".
	System string
	// Entries is the synthesized supplementary dictionary.
	Entries []model.LexEntry
}

// Tokenizer is a ready-to-use segmenter. Construct one with New and share
// it freely; kagome tokenizers are safe for concurrent use.
type Tokenizer struct {
	kg *tokenizer.Tokenizer
}

// New builds a tokenizer from the configuration. The supplementary entries
// are converted to a kagome user dictionary; user-dictionary matches take
// precedence over any system-lexicon segmentation of the same span.
func New(cfg Config) (*Tokenizer, error) {
	d, err := systemDict(cfg.System)
	if err != nil {
		return nil, err
	}
	opts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if len(cfg.Entries) > 0 {
		udict, err := UserDictRecords(cfg.Entries).NewUserDict()
		if err != nil {
			return nil, fmt.Errorf("tokenize: user dictionary: %w", err)
		}
		opts = append(opts, tokenizer.UserDict(udict))
	}
	kg, err := tokenizer.New(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return &Tokenizer{kg: kg}, nil
}

func systemDict(name string) (*dict.Dict, error) {
	switch name {
	case "", "ipa":
		return ipa.Dict(), nil
	case "uni":
		return uni.Dict(), nil
	default:
		return nil, fmt.Errorf("tokenize: unknown system dictionary %q", name)
	}
}

// UserDictRecords converts synthesized entries to kagome user-dictionary
// records. Each compound is a single segment whose reading is the entry's
// concatenated katakana reading; the part-of-speech tag is the head of the
// entry's part-of-speech path.
func UserDictRecords(entries []model.LexEntry) dict.UserDictRecords {
	recs := make(dict.UserDictRecords, 0, len(entries))
	for _, e := range entries {
		pos := e.PartOfSpeech
		if i := strings.Index(pos, ","); i >= 0 {
			pos = pos[:i]
		}
		if pos == "" {
			pos = "カスタム"
		}
		recs = append(recs, dict.UserDicRecord{
			Text:   e.Surface,
			Tokens: []string{e.Surface},
			Yomi:   []string{e.Reading},
			Pos:    pos,
		})
	}
	return recs
}

// Tokenize segments text and returns the tokens with their morphological
// fields filled in.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return convertKagomeTokens(t.kg.Tokenize(text)), nil
}

// Segment returns just the token surfaces, the shape the external CCG
// parser expects a pre-tokenized sentence in.
func (t *Tokenizer) Segment(ctx context.Context, text string) ([]string, error) {
	toks, err := t.Tokenize(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tk.Text)
	}
	return out, nil
}

func convertKagomeTokens(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		pos := strings.Join(kt.POS(), ",")
		lemma, _ := kt.BaseForm()
		if lemma == "" {
			lemma = kt.Surface
		}
		reading, okR := kt.Reading()
		if !okR {
			reading = ""
		}
		pron, okP := kt.Pronunciation()
		if !okP {
			pron = ""
		}
		features := kt.Features()
		infType, infForm := "", ""
		if len(features) > 5 {
			infType = features[4]
			infForm = features[5]
		}
		// user-dictionary tokens never answer Reading/Pronunciation; their
		// features are [pos, segmentation, yomi]
		if kt.Class == tokenizer.USER && len(features) > 2 {
			reading = features[2]
			pron = features[2]
		}
		out = append(out, Token{
			Text:           kt.Surface,
			Lemma:          lemma,
			POS:            pos,
			Start:          kt.Start,
			End:            kt.End,
			Reading:        reading,
			Pronunciation:  pron,
			TokenID:        kt.ID,
			InflectionType: infType,
			InflectionForm: infForm,
			FromUserDict:   kt.Class == tokenizer.USER,
		})
	}
	return out
}
