// Package render emits derivation trees in the ABC Treebank S-expression
// format, translating each node's category label on the way out.
package render

import (
	"fmt"
	"io"

	"abcparse/category"
	"abcparse/ccg"
)

// Tree writes one derivation tree as an S-expression: (cat child ...) for
// internal nodes, (cat surf) for leaves. Every category label is translated
// into angle notation; an untranslatable label aborts the dump.
func Tree(w io.Writer, t *ccg.Tree) error {
	cat, err := category.Translate(t.Cat)
	if err != nil {
		return err
	}
	if t.Leaf() {
		surf := t.Surf
		if surf == "" {
			surf = t.Word
		}
		if surf == "" {
			surf = "ERROR"
		}
		_, err := fmt.Fprintf(w, "(%s %s)", cat, surf)
		return err
	}
	if _, err := fmt.Fprintf(w, "(%s", cat); err != nil {
		return err
	}
	for _, child := range t.Children {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := Tree(w, child); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, ")")
	return err
}

// Parses writes every ranked parse of one sentence, one line each, wrapped
// in a ROOT/TOP envelope carrying the parse probability as a comment node
// and the sentence identifier as a trailing ID node.
func Parses(w io.Writer, parses []ccg.Scored, id string) error {
	for _, p := range parses {
		wrapped := &ccg.Tree{
			Cat: "TOP",
			Children: []*ccg.Tree{
				{Cat: "COMMENT", Surf: fmt.Sprintf("{probability=%v}", p.Probability)},
				p.Tree,
				{Cat: "ID", Surf: id},
			},
		}
		if err := Tree(w, wrapped); err != nil {
			return fmt.Errorf("render parse %s: %w", id, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
