package sudoku

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-arc/arco/pkg/arco"
	"github.com/go-arc/arco/pkg/arco/input"
)

// Grid holds the 81 cells of a puzzle, row by row. Zero marks a blank
// cell.
type Grid [9][9]int

// CellID returns the identifier of the cell at the given zero-based row
// and column: X11 for the top left corner through X99 for the bottom
// right.
func CellID(row int, col int) arco.Identifier {
	return arco.Identifier(fmt.Sprintf("X%d%d", row+1, col+1))
}

// NewGrid creates a Grid with the values parsed from the stream
// afforded by gridReader: nine rows of nine digits, with 0 or . for a
// blank cell. Whitespace within a row, empty lines and lines starting
// with # are ignored.
func NewGrid(gridReader io.Reader) (*Grid, error) {
	reader := bufio.NewReader(gridReader)

	var grid Grid
	row := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading puzzle data: %w", err)
		}

		cells := strings.Join(strings.Fields(line), "")
		if cells != "" && !strings.HasPrefix(cells, "#") {
			if row == 9 {
				return nil, fmt.Errorf("invalid puzzle: more than 9 rows")
			}
			if len(cells) != 9 {
				return nil, fmt.Errorf("invalid row %q: has %d cells, want 9", cells, len(cells))
			}
			for col, c := range cells {
				switch {
				case c >= '1' && c <= '9':
					grid[row][col] = int(c - '0')
				case c == '0' || c == '.':
					grid[row][col] = 0
				default:
					return nil, fmt.Errorf("invalid cell %q in row %q", c, cells)
				}
			}
			row++
		}

		if err != nil {
			break
		}
	}

	if row != 9 {
		return nil, fmt.Errorf("invalid puzzle: has %d rows, want 9", row)
	}
	return &grid, nil
}

var _ input.Source[int] = &Grid{}

// GetModel builds the puzzle's constraint model: one variable per cell,
// given cells pinned to their digit, and an all-different group over
// every row, column and box.
func (g *Grid) GetModel(_ context.Context) (*input.Model[int], error) {
	m := input.NewModel[int]()

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if v := g[row][col]; v != 0 {
				m.AddVariable(CellID(row, col), v)
			} else {
				m.AddVariable(CellID(row, col), 1, 2, 3, 4, 5, 6, 7, 8, 9)
			}
		}
	}

	for row := 0; row < 9; row++ {
		ids := make([]arco.Identifier, 9)
		for col := 0; col < 9; col++ {
			ids[col] = CellID(row, col)
		}
		m.AddAllDifferent(ids...)
	}

	for col := 0; col < 9; col++ {
		ids := make([]arco.Identifier, 9)
		for row := 0; row < 9; row++ {
			ids[row] = CellID(row, col)
		}
		m.AddAllDifferent(ids...)
	}

	// all-different group for the box rooted at x, y
	var box = func(x, y int) {
		offs := []struct{ x, y int }{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
		ids := make([]arco.Identifier, len(offs))
		for i, off := range offs {
			ids[i] = CellID(x+off.x, y+off.y)
		}
		m.AddAllDifferent(ids...)
	}
	for x := 0; x < 9; x += 3 {
		for y := 0; y < 9; y += 3 {
			box(x, y)
		}
	}

	return m, nil
}
