// Package ccg declares the interface to the external search-based CCG parser
// and the derivation trees it returns. The parser itself is an external
// collaborator; this module only consumes its output.
package ccg

import "context"

// Tree is one node of a derivation tree. Internal nodes carry Children;
// leaves carry the surface word in Surf (or, in some parser outputs, Word).
type Tree struct {
	Cat      string  `json:"cat"`
	Surf     string  `json:"surf,omitempty"`
	Word     string  `json:"word,omitempty"`
	Children []*Tree `json:"children,omitempty"`
}

// Leaf reports whether the node has no children.
func (t *Tree) Leaf() bool { return len(t.Children) == 0 }

// Scored is one ranked analysis of a sentence.
type Scored struct {
	Tree        *Tree   `json:"tree"`
	Probability float64 `json:"probability"`
}

// Parser is the external CCG parser: tokenized sentences go in, per-sentence
// ranked derivations come out. Implementations are expected to batch
// internally with the given batch size.
type Parser interface {
	ParseDoc(ctx context.Context, sentences [][]string, batchSize int) ([][]Scored, error)
}
