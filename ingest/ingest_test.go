package ingest

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	s, err := New("  雨が降るかもしれない。 ")
	if err != nil {
		t.Fatal(err)
	}
	if s.Text != "雨が降るかもしれない。" {
		t.Errorf("text must be trimmed, got %q", s.Text)
	}
	if s.ID == "" {
		t.Error("id must be assigned")
	}

	if _, err := New("   "); err == nil {
		t.Error("blank input must be rejected")
	}
}

func TestReadAllSkipsBlankLines(t *testing.T) {
	in := "一行目。\n\n  \n二行目。\n"
	got, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 sentences, got %d", len(got))
	}
	if got[0].Text != "一行目。" || got[1].Text != "二行目。" {
		t.Errorf("got %v", got)
	}
	if got[0].ID == got[1].ID {
		t.Error("ids must be distinct")
	}
}
