package display

import (
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/rules"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStartingBoard(t *testing.T) {
	expected := strings.Join([]string{
		"",
		"  a b c d e f g h",
		" +----------------+",
		"8|♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜ |8",
		" +----------------+",
		"7|♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟ |7",
		" +----------------+",
		"6|x x x x x x x x |6",
		" +----------------+",
		"5|x x x x x x x x |5",
		" +----------------+",
		"4|x x x x x x x x |4",
		" +----------------+",
		"3|x x x x x x x x |3",
		" +----------------+",
		"2|♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙ |2",
		" +----------------+",
		"1|♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖ |1",
		" +----------------+",
		"  a b c d e f g h",
		"",
	}, "\n")

	assert.Equal(t, expected, RenderBoard(rules.NewBoard()))
	assert.Equal(t, expected, RenderBoard(rules.NewBoard(), WithHighlight{true}))
}

func TestRenderHighlightsLastMove(t *testing.T) {
	b := rules.NewBoard()
	require.True(t, IsNil(b.PushString("e2e4")))

	plain := RenderBoard(b)
	highlighted := RenderBoard(b, WithHighlight{true})

	assert.NotContains(t, plain, "\x1b[")
	assert.Equal(t, 2, strings.Count(highlighted, _highlightStart))
	assert.Equal(t, plain, stripansi.Strip(highlighted))

	assert.Contains(t, plain, "4|x x x x ♙ x x x |4")
	assert.Contains(t, highlighted, "4|x x x x "+_highlightStart+"♙ "+_highlightEnd+"x x x |4")
	assert.Contains(t, highlighted, "2|♙ ♙ ♙ ♙ "+_highlightStart+"x "+_highlightEnd+"♙ ♙ ♙ |2")
}

func TestRowsLineUp(t *testing.T) {
	b, err := rules.BoardFromFen("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	require.True(t, IsNil(err), err)
	require.True(t, IsNil(b.PushString("h5f7")))

	for _, line := range strings.Split(stripansi.Strip(RenderBoard(b, WithHighlight{true})), "\n") {
		if line == "" || strings.HasPrefix(line, "  ") {
			continue
		}
		runes := []rune(line)
		require.Greater(t, len(runes), 18, line)
		assert.Contains(t, "|+", string(runes[18]), line)
	}
}

func TestFormatMoves(t *testing.T) {
	b := rules.NewBoard()
	formatted := FormatMoves(b.LegalMoves())

	rows := strings.Split(formatted, "\n")
	assert.Equal(t, 5, len(rows))
	for _, row := range rows {
		assert.Equal(t, 4, len(strings.Split(row, " | ")), row)
	}
	assert.Contains(t, formatted, "E2 -> E4")
	assert.Contains(t, formatted, "G1 -> F3")

	assert.Equal(t, "", FormatMoves([]*chess.Move{}))
}

func TestFormatPromotion(t *testing.T) {
	b, err := rules.BoardFromFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.True(t, IsNil(err), err)

	move, err := b.ParseMove("a7a8q")
	require.True(t, IsNil(err), err)
	assert.Equal(t, "A7 -> A8=Q", FormatMove(move))

	move, err = b.ParseMove("h1h2")
	require.True(t, IsNil(err), err)
	assert.Equal(t, "H1 -> H2", FormatMove(move))
}
