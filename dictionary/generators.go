package dictionary

import (
	"strings"

	"abcparse/lexicon"
	"abcparse/model"
)

// costBias makes a terminal compound strictly cheaper than any shorter
// segmentation the lattice could pick instead. Intermediate compounds are
// not biased; the bias lands exactly once, at the terminal generator.
const costBias = -10000

// caseParticles are the particles spliced between はず and its negative
// predicate, in both hiragana and katakana spellings.
var caseParticles = []model.Affix{
	{Surface: "が", BaseForm: "が", Reading: "ガ", Phonetic: "ガ"},
	{Surface: "ガ", BaseForm: "ガ", Reading: "ガ", Phonetic: "ガ"},
	{Surface: "は", BaseForm: "は", Reading: "ハ", Phonetic: "ワ"},
	{Surface: "ハ", BaseForm: "ハ", Reading: "ハ", Phonetic: "ワ"},
	{Surface: "も", BaseForm: "も", Reading: "モ", Phonetic: "モ"},
	{Surface: "モ", BaseForm: "モ", Reading: "モ", Phonetic: "モ"},
	{Surface: "の", BaseForm: "の", Reading: "ノ", Phonetic: "ノ"},
	{Surface: "ノ", BaseForm: "ノ", Reading: "ノ", Phonetic: "ノ"},
}

// moshireSpellings are the orthographic variants of もしれ in かもしれない.
var moshireSpellings = []model.Affix{
	{Surface: "もしれ", BaseForm: "もしれ", Reading: "モシレ", Phonetic: "モシレ"},
	{Surface: "モシレ", BaseForm: "モシレ", Reading: "モシレ", Phonetic: "モシレ"},
	{Surface: "も知れ", BaseForm: "も知れ", Reading: "モシレ", Phonetic: "モシレ"},
	{Surface: "モ知レ", BaseForm: "モ知レ", Reading: "モシレ", Phonetic: "モシレ"},
}

// topicParticles follow the conjunctive て in ては/ても prohibitives.
var topicParticles = []model.Affix{
	{Surface: "は", BaseForm: "は", Reading: "ハ", Phonetic: "ワ"},
	{Surface: "ハ", BaseForm: "ハ", Reading: "ハ", Phonetic: "ワ"},
	{Surface: "も", BaseForm: "も", Reading: "モ", Phonetic: "モ"},
	{Surface: "モ", BaseForm: "モ", Reading: "モ", Phonetic: "モ"},
}

// genMasen composes the polite negative ません from an irrealis ませ stem and
// an ん-initial negation auxiliary. Matching the irrealis form by prefix 未然形
// rules out 未然ウ接続, i.e. the ましょう stem. Intermediate only.
func genMasen(cl lexicon.Classes) []model.LexEntry {
	var out []model.LexEntry
	for _, masu := range cl[lexicon.Masu] {
		if !strings.HasPrefix(masu.InflForm, "未然形") {
			continue
		}
		for _, head := range cl[lexicon.NaiAux] {
			if !strings.HasPrefix(head.Surface, "ん") {
				continue
			}
			out = append(out, head.WithPrefix(masu))
		}
	}
	return out
}

// genNegPredicate collects the negative predicates ない (the adjective,
// verbatim) and ありません (continuative ある + ません). The continuative is
// matched by prefix 連用形, excluding the テ接続 あって. Intermediate only.
func genNegPredicate(cl lexicon.Classes, masen []model.LexEntry) []model.LexEntry {
	out := append([]model.LexEntry(nil), cl[lexicon.NaiAdj]...)
	for _, aru := range cl[lexicon.Aru] {
		if !strings.HasPrefix(aru.InflForm, "連用形") {
			continue
		}
		for _, head := range masen {
			out = append(out, head.WithPrefix(aru))
		}
	}
	return out
}

// genNaranai composes the ならない family: irrealis なら + any negation
// auxiliary (ならない, ならぬ, ならん), and continuative なり + ません.
// Irrealis by prefix excludes なろう; continuative by prefix excludes なって.
// Intermediate only.
func genNaranai(cl lexicon.Classes, masen []model.LexEntry) []model.LexEntry {
	var out []model.LexEntry
	for _, naru := range cl[lexicon.Naru] {
		if !strings.HasPrefix(naru.InflForm, "未然形") {
			continue
		}
		for _, head := range cl[lexicon.NaiAux] {
			out = append(out, head.WithPrefix(naru))
		}
	}
	for _, naru := range cl[lexicon.Naru] {
		if !strings.HasPrefix(naru.InflForm, "連用形") {
			continue
		}
		for _, head := range masen {
			out = append(out, head.WithPrefix(naru))
		}
	}
	return out
}

// genIkenai composes the いけない family. The ない-family heads take the
// potential stem いけ, the ぬ/ん-family heads take the plain stem いか, and
// ません takes the continuative いけ. Intermediate only.
func genIkenai(cl lexicon.Classes, masen []model.LexEntry) []model.LexEntry {
	var out []model.LexEntry
	for _, ikeru := range cl[lexicon.Ikeru] {
		if !strings.HasPrefix(ikeru.InflForm, "未然形") {
			continue
		}
		for _, head := range cl[lexicon.NaiAux] {
			if head.BaseForm != "ない" && head.BaseForm != "無い" {
				continue
			}
			out = append(out, head.WithPrefix(ikeru))
		}
	}
	for _, iku := range cl[lexicon.Iku] {
		if !strings.HasPrefix(iku.InflForm, "未然形") {
			continue
		}
		for _, head := range cl[lexicon.NaiAux] {
			if head.BaseForm != "ぬ" && head.BaseForm != "ん" {
				continue
			}
			out = append(out, head.WithPrefix(iku))
		}
	}
	for _, ikeru := range cl[lexicon.Ikeru] {
		if !strings.HasPrefix(ikeru.InflForm, "連用形") {
			continue
		}
		for _, head := range masen {
			out = append(out, head.WithPrefix(ikeru))
		}
	}
	return out
}

// genDarou yields the volitional copulas だろう and でしょう. Terminal.
func genDarou(cl lexicon.Classes) []model.LexEntry {
	var out []model.LexEntry
	for _, cop := range cl[lexicon.Daro] {
		for _, head := range cl[lexicon.U] {
			out = append(out, head.WithPrefix(cop).WithCostBias(costBias))
		}
	}
	return out
}

// genHazu yields はず + case particle + {ない, ありません, ある}:
// はずがない, はずもありません, はずがある and so on, eight particle
// spellings apiece. Terminal.
func genHazu(cl lexicon.Classes, negPred []model.LexEntry) []model.LexEntry {
	heads := append(append([]model.LexEntry(nil), negPred...), cl[lexicon.Aru]...)
	var out []model.LexEntry
	for _, hazu := range cl[lexicon.Hazu] {
		for _, particle := range caseParticles {
			for _, head := range heads {
				out = append(out, head.WithPrefix(hazu, particle).WithCostBias(costBias))
			}
		}
	}
	return out
}

// genKamoshirenai yields か + もしれ + negation auxiliary in the four
// spellings of もしれ. Terminal.
func genKamoshirenai(cl lexicon.Classes) []model.LexEntry {
	var out []model.LexEntry
	for _, ka := range cl[lexicon.Ka] {
		for _, moshire := range moshireSpellings {
			for _, head := range cl[lexicon.NaiAux] {
				out = append(out, head.WithPrefix(ka, moshire).WithCostBias(costBias))
			}
		}
	}
	return out
}

// genObligation yields the obligation and prohibition constructions: a
// conditional negation (なければ, なきゃ, ないと, …) or a ては/ても prefix,
// followed by a ならない-family or いけない-family compound. Terminal.
func genObligation(cl lexicon.Classes, naranai, ikenai []model.LexEntry) []model.LexEntry {
	var prefixes []model.LexEntry
	for _, nai := range cl[lexicon.NaiAux] {
		prefixes = append(prefixes, conditionalForms(nai)...)
	}
	for _, te := range cl[lexicon.Te] {
		for _, particle := range topicParticles {
			prefixes = append(prefixes, te.WithSuffix(particle))
		}
	}
	heads := append(append([]model.LexEntry(nil), naranai...), ikenai...)
	var out []model.LexEntry
	for _, prefix := range prefixes {
		for _, head := range heads {
			out = append(out, head.WithPrefix(prefix).WithCostBias(costBias))
		}
	}
	return out
}

// conditionalForms derives the conditional variants of one negation entry
// from its inflection form:
//
//	仮定 contracted (なきゃ, なけりゃ)  the entry itself, suffix-free
//	仮定 plain (なけれ, ね)             +ば and +バ
//	基本 (ない, ん)                     +と and +ト
//	連用テ接続 (なく, なくっ)           +{て,テ}, optionally +{は,ハ}
//
// Any other inflection form has no conditional use here and yields nothing.
func conditionalForms(nai model.LexEntry) []model.LexEntry {
	form := nai.InflForm
	switch {
	case strings.HasPrefix(form, "仮定"):
		if strings.Contains(form, "縮約") {
			return []model.LexEntry{nai}
		}
		return []model.LexEntry{
			nai.WithSuffix(model.Affix{Surface: "ば", BaseForm: "ば", Reading: "バ", Phonetic: "バ"}),
			nai.WithSuffix(model.Affix{Surface: "バ", BaseForm: "バ", Reading: "バ", Phonetic: "バ"}),
		}
	case strings.HasPrefix(form, "基本"):
		return []model.LexEntry{
			nai.WithSuffix(model.Affix{Surface: "と", BaseForm: "と", Reading: "ト", Phonetic: "ト"}),
			nai.WithSuffix(model.Affix{Surface: "ト", BaseForm: "ト", Reading: "ト", Phonetic: "ト"}),
		}
	case strings.HasPrefix(form, "連用テ接続"):
		var out []model.LexEntry
		for _, te := range []model.Affix{
			{Surface: "て", BaseForm: "て", Reading: "テ", Phonetic: "テ"},
			{Surface: "テ", BaseForm: "テ", Reading: "テ", Phonetic: "テ"},
		} {
			for _, wa := range []model.Affix{
				{},
				{Surface: "は", BaseForm: "は", Reading: "ハ", Phonetic: "ワ"},
				{Surface: "ハ", BaseForm: "ハ", Reading: "ハ", Phonetic: "ワ"},
			} {
				out = append(out, nai.WithSuffix(te).WithSuffix(wa))
			}
		}
		return out
	default:
		return nil
	}
}
