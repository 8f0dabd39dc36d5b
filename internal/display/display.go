package display

import (
	"fmt"
	"strings"

	"github.com/acarl005/stripansi"
	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/rules"
	"github.com/notnil/chess"
)

const (
	_files  = "  a b c d e f g h"
	_border = " +----------------+"

	_highlightStart = "\x1b[30;43m"
	_highlightEnd   = "\x1b[0m"
)

var _pieceSymbols = map[chess.Piece]string{
	chess.BlackRook:   "♜",
	chess.BlackKnight: "♞",
	chess.BlackBishop: "♝",
	chess.BlackQueen:  "♛",
	chess.BlackKing:   "♚",
	chess.BlackPawn:   "♟",
	chess.WhiteRook:   "♖",
	chess.WhiteKnight: "♘",
	chess.WhiteBishop: "♗",
	chess.WhiteQueen:  "♕",
	chess.WhiteKing:   "♔",
	chess.WhitePawn:   "♙",
}

func PieceSymbol(piece chess.Piece) string {
	if symbol, ok := _pieceSymbols[piece]; ok {
		return symbol
	}
	return "x"
}

type renderConfig struct {
	highlight bool
}

type RenderOption interface {
	apply(config *renderConfig)
}

// WithHighlight colors the origin and destination of the last move.
type WithHighlight struct {
	Highlight bool
}

func (o WithHighlight) apply(config *renderConfig) {
	config.highlight = o.Highlight
}

// RenderBoard draws the board from white's side, rank 8 at the top.
func RenderBoard(b *rules.Board, opts ...RenderOption) string {
	config := renderConfig{}
	for _, opt := range opts {
		opt.apply(&config)
	}

	highlighted := map[chess.Square]bool{}
	if lastMove := b.LastMove(); lastMove.HasValue() {
		highlighted[lastMove.Value().S1()] = true
		highlighted[lastMove.Value().S2()] = true
	}

	pieces := b.PieceMap()

	lines := []string{"", _files, _border}
	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		row := fmt.Sprintf("%v|", rank)
		for file := chess.FileA; file <= chess.FileH; file++ {
			square := chess.NewSquare(file, rank)
			cell := PieceSymbol(pieces[square]) + " "
			if highlighted[square] {
				cell = _highlightStart + cell + _highlightEnd
			}
			row += cell
		}
		row += fmt.Sprintf("|%v", rank)
		lines = append(lines, row, _border)
	}
	lines = append(lines, _files, "")

	result := strings.Join(lines, "\n")
	if !config.highlight {
		return stripansi.Strip(result)
	}
	return result
}

func FormatMove(move *chess.Move) string {
	result := strings.ToUpper(move.S1().String()) + " -> " + strings.ToUpper(move.S2().String())
	if move.Promo() != chess.NoPieceType {
		result += "=" + strings.ToUpper(rules.MoveString(move)[4:])
	}
	return result
}

// FormatMoves lists moves four to a line.
func FormatMoves(moves []*chess.Move) string {
	rows := MapSlice(ChunkSlice(MapSlice(moves, FormatMove), 4), func(row []string) string {
		return strings.Join(row, " | ")
	})
	return strings.Join(rows, "\n")
}
