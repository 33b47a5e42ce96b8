package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize

	// StateLength is the length of a serialized board.
	StateLength = CellCount
)

// Mark is the symbol occupying a cell.
type Mark byte

const (
	MarkEmpty Mark = ' '
	MarkX     Mark = 'X'
	MarkO     Mark = 'O'
)

// Line is one of the eight fixed triples, as row-major cell indexes.
type Line [3]int

// WinCombos - rows, then columns, then the two diagonals.
var WinCombos = []Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{6, 4, 2},
}

func ParseMark(b byte) (Mark, error) {
	switch mark := Mark(b); mark {
	case MarkEmpty, MarkX, MarkO:
		return mark, nil
	default:
		return MarkEmpty, fmt.Errorf("%w: unknown symbol %q", apperror.ErrInvalidFormat, b)
	}
}

func (that Mark) String() string {
	return string(rune(that))
}

func (that Mark) IsEmpty() bool {
	return that == MarkEmpty
}

// Board is a 3x3 grid of marks stored row-major. Empty cells always hold MarkEmpty.
type Board struct {
	cells [CellCount]Mark
}

func NewBoard() *Board {
	board := &Board{}
	board.Reset()

	return board
}

// Get returns the mark at row, col. Coordinates outside [0, 3) panic.
func (that *Board) Get(row, col int) Mark {
	return that.cells[index(row, col)]
}

// Set overwrites the cell without checking turn legality.
func (that *Board) Set(row, col int, mark Mark) {
	that.cells[index(row, col)] = mark
}

func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = MarkEmpty
	}
}

// Cells returns a copy of the cells for rendering.
func (that *Board) Cells() [CellCount]Mark {
	return that.cells
}

// Serialize - row-major concatenation of the cell symbols, no delimiters.
func (that *Board) Serialize() string {
	var sb strings.Builder
	sb.Grow(StateLength)

	for _, cell := range that.cells {
		sb.WriteByte(byte(cell))
	}

	return sb.String()
}

// Deserialize - parses a serialized board. On error the board is left untouched.
func (that *Board) Deserialize(state string) error {
	if len(state) != StateLength {
		return fmt.Errorf("%w: expected %d symbols, got %d", apperror.ErrInvalidFormat, StateLength, len(state))
	}

	var scratch [CellCount]Mark
	for i := range len(state) {
		mark, err := ParseMark(state[i])
		if err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}

		scratch[i] = mark
	}

	that.cells = scratch

	return nil
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that.cells {
		if cell == mark {
			count++
		}
	}

	return count
}

// IsFull - true when no cell is empty.
func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

// WinningLine returns the first triple holding three equal non-empty marks.
func (that *Board) WinningLine() (Line, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return combo, true
		}
	}

	return Line{}, false
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		if row > 0 {
			sb.WriteString("\n---+---+---\n")
		}

		for col := range BoardSize {
			if col > 0 {
				sb.WriteByte('|')
			}

			fmt.Fprintf(&sb, " %s ", that.Get(row, col))
		}
	}

	return sb.String()
}

// InRange reports whether row, col address a cell of the board.
func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func index(row, col int) int {
	if !InRange(row, col) {
		panic(fmt.Sprintf("cell (%d, %d) is out of range", row, col))
	}

	return row*BoardSize + col
}
