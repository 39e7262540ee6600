package lexicon

import (
	"strings"
	"testing"

	"abcparse/model"
)

func mk(surface, pos, inflType, inflForm, base string) model.LexEntry {
	return model.LexEntry{
		Surface:      surface,
		PartOfSpeech: pos,
		InflType:     inflType,
		InflForm:     inflForm,
		BaseForm:     base,
	}
}

func TestClassify(t *testing.T) {
	entries := []model.LexEntry{
		mk("筈", "名詞,非自立,一般,*", "*", "*", "筈"),
		mk("はず", "名詞,非自立,一般,*", "*", "*", "はず"),
		mk("はず", "名詞,一般,*,*", "*", "*", "はず"), // not dependent: excluded
		mk("ない", "形容詞,自立,*,*", "形容詞・アウオ段", "基本形", "ない"),
		mk("ない", "助動詞,*,*,*", "特殊・ナイ", "基本形", "ない"),
		mk("ぬ", "助動詞,*,*,*", "特殊・ヌ", "基本形", "ぬ"),
		mk("ぬ", "助動詞,*,*,*", "不変化型", "基本形", "ぬ"), // wrong conjugation class
		mk("ん", "助動詞,*,*,*", "不変化型", "基本形", "ん"),
		mk("だろ", "助動詞,*,*,*", "特殊・ダ", "未然形", "だ"),
		mk("だっ", "助動詞,*,*,*", "特殊・ダ", "連用タ接続", "だ"),
		mk("で", "助詞,接続助詞,*,*", "*", "*", "で"),
		mk("で", "助詞,格助詞,一般,*", "*", "*", "で"), // case particle: excluded
	}
	cl := Classify(entries)

	if got := len(cl[Hazu]); got != 2 {
		t.Fatalf("hazu: want 2 entries, got %d", got)
	}
	if cl[Hazu][0].Surface != "筈" || cl[Hazu][1].Surface != "はず" {
		t.Errorf("hazu class must preserve lexicon order, got %v", cl[Hazu])
	}

	if got := len(cl[NaiAdj]); got != 1 {
		t.Fatalf("nai_adj: want 1 entry, got %d", got)
	}
	if got := len(cl[NaiAux]); got != 3 {
		// ない (auxiliary), 特殊・ヌ ぬ, ん
		t.Fatalf("nai_aux: want 3 entries, got %d", got)
	}
	if got := len(cl[Daro]); got != 1 {
		t.Fatalf("daro: want only the irrealis form, got %d", got)
	}
	if got := len(cl[Te]); got != 1 {
		t.Fatalf("te: want only the conjunctive particle, got %d", got)
	}
}

func TestClassifyEmptyClassIsNotAnError(t *testing.T) {
	cl := Classify(nil)
	if cl == nil {
		t.Fatal("classes must not be nil")
	}
	for _, def := range classDefs {
		if got, ok := cl[def.name]; !ok || len(got) != 0 {
			t.Errorf("%s: want present and empty, got %v", def.name, got)
		}
	}
}

func TestEntryInMultipleClasses(t *testing.T) {
	// 行く and 行ける stems both live in 動詞,非自立; an entry can be in
	// neither, one, or several classes.
	e := mk("ん", "助動詞,*,*,*", "不変化型", "基本形", "ん")
	cl := Classify([]model.LexEntry{e})
	if len(cl[NaiAux]) != 1 {
		t.Fatalf("ん must classify as negation auxiliary")
	}
	if len(cl[Masu]) != 0 {
		t.Fatalf("ん must not classify as polite stem")
	}
}

func TestLoadMixedShapes(t *testing.T) {
	csv := strings.Join([]string{
		// thirteen-field IPADIC row
		"ない,1138,1138,5673,形容詞,自立,*,*,形容詞・アウオ段,基本形,ない,ナイ,ナイ",
		// ten-field native row
		"筈もない,1310,1138,-4327,\"形容詞,自立,*,*\",形容詞・アウオ段,基本形,筈もない,ハズモナイ,ハズモナイ",
	}, "\n")
	got, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 entries, got %d", len(got))
	}
	if got[0].PartOfSpeech != "形容詞,自立,*,*" {
		t.Errorf("pos columns must be rejoined, got %q", got[0].PartOfSpeech)
	}
	if got[1].Cost != -4327 {
		t.Errorf("cost: got %d", got[1].Cost)
	}
	if got[1].Surface != "筈もない" {
		t.Errorf("surface: got %q", got[1].Surface)
	}
}

func TestLoadRejectsMalformedRows(t *testing.T) {
	if _, err := Load(strings.NewReader("a,b,c")); err == nil {
		t.Fatal("want field-count error")
	}
	if _, err := Load(strings.NewReader("ない,x,1138,5673,形容詞,自立,*,*,形容詞・アウオ段,基本形,ない,ナイ,ナイ")); err == nil {
		t.Fatal("want left_id parse error")
	}
}
