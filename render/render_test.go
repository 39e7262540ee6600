package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abcparse/category"
	"abcparse/ccg"
)

func TestTree(t *testing.T) {
	tree := &ccg.Tree{
		Cat: "S[m]",
		Children: []*ccg.Tree{
			{Cat: `S[m]/S[m]`, Surf: "きっと"},
			{Cat: `S[m]\PP[s]`, Children: []*ccg.Tree{
				{Cat: "PP[s]", Word: "太郎が"},
				{Cat: `S[m]\PP[s]`, Surf: "来る"},
			}},
		},
	}
	var b strings.Builder
	require.NoError(t, Tree(&b, tree))
	assert.Equal(t,
		`(Sm (<Sm/Sm> きっと) (<PPs\Sm> (PPs 太郎が) (<PPs\Sm> 来る)))`,
		b.String())
}

func TestTreeLeafFallbacks(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Tree(&b, &ccg.Tree{Cat: "N", Word: "word-only"}))
	assert.Equal(t, "(N word-only)", b.String())

	b.Reset()
	require.NoError(t, Tree(&b, &ccg.Tree{Cat: "N"}))
	assert.Equal(t, "(N ERROR)", b.String())
}

func TestTreeRejectsMalformedCategory(t *testing.T) {
	var b strings.Builder
	err := Tree(&b, &ccg.Tree{Cat: "S[m]/", Surf: "x"})
	require.Error(t, err)
	var syn *category.SyntaxError
	assert.ErrorAs(t, err, &syn)
}

func TestParses(t *testing.T) {
	parses := []ccg.Scored{
		{Tree: &ccg.Tree{Cat: "S[m]", Surf: "はい"}, Probability: 0.75},
		{Tree: &ccg.Tree{Cat: "FRAG", Surf: "はい"}, Probability: 0.25},
	}
	var b strings.Builder
	require.NoError(t, Parses(&b, parses, "3"))
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "(TOP (COMMENT {probability=0.75}) (Sm はい) (ID 3))", lines[0])
	assert.Equal(t, "(TOP (COMMENT {probability=0.25}) (FRAG はい) (ID 3))", lines[1])
}
