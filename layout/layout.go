// Package layout describes word clock faces: a list of word
// placements on a rectangular grid, plus filler letters for the
// unused cells. The export pipeline consumes only the materialized
// character grid.
package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBadSize      = errors.New("layout: non-positive grid size")
	ErrNoWords      = errors.New("layout: no words")
	ErrOutOfBounds  = errors.New("layout: word out of bounds")
	ErrOverlap      = errors.New("layout: conflicting letters at shared cell")
	ErrFillerLength = errors.New("layout: filler length does not match blank cells")
)

// Word is a single placement: Text starts at (Row, Col) and runs
// right, or down when Vertical is set.
type Word struct {
	Text     string `json:"text"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Vertical bool   `json:"vertical,omitempty"`
}

// Layout is a clock face description. Filler, if set, lists the
// letters for the cells no word covers, in row-major order, and must
// cover them exactly. An empty Filler leaves those cells blank.
type Layout struct {
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Words  []Word `json:"words"`
	Filler string `json:"filler,omitempty"`
}

// Grid is a materialized letter grid. Blank cells hold spaces.
type Grid struct {
	rows, cols int
	cells      []rune
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// At returns the letter at (row, col), or a space outside the grid.
func (g *Grid) At(row, col int) rune {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return ' '
	}
	return g.cells[row*g.cols+col]
}

// Row returns one grid row as a string.
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	return string(g.cells[row*g.cols : (row+1)*g.cols])
}

// Materialize places every word and the filler letters, validating
// bounds and overlaps. Overlapping placements are allowed only where
// they agree on the letter.
func (l *Layout) Materialize() (*Grid, error) {
	if l.Rows <= 0 || l.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, l.Cols, l.Rows)
	}
	if len(l.Words) == 0 {
		return nil, ErrNoWords
	}
	g := &Grid{
		rows:  l.Rows,
		cols:  l.Cols,
		cells: make([]rune, l.Rows*l.Cols),
	}
	for i := range g.cells {
		g.cells[i] = ' '
	}
	for _, w := range l.Words {
		text := []rune(strings.ToUpper(w.Text))
		for i, ch := range text {
			row, col := w.Row, w.Col+i
			if w.Vertical {
				row, col = w.Row+i, w.Col
			}
			if row < 0 || row >= l.Rows || col < 0 || col >= l.Cols {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrOutOfBounds, w.Text, w.Row, w.Col)
			}
			idx := row*l.Cols + col
			if prev := g.cells[idx]; prev != ' ' && prev != ch {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrOverlap, w.Text, row, col)
			}
			g.cells[idx] = ch
		}
	}
	if l.Filler != "" {
		filler := []rune(strings.ToUpper(l.Filler))
		blanks := 0
		for _, c := range g.cells {
			if c == ' ' {
				blanks++
			}
		}
		if len(filler) != blanks {
			return nil, fmt.Errorf("%w: %d letters for %d cells", ErrFillerLength, len(filler), blanks)
		}
		next := 0
		for i, c := range g.cells {
			if c == ' ' {
				g.cells[i] = filler[next]
				next++
			}
		}
	}
	return g, nil
}

// FindWords resolves a phrase to word placements. Matching walks the
// placements in reading order, taking for each phrase word the first
// unused match at or after the previous one; vocabulary that sits
// earlier in the grid (AM and PM in the top row) is found by
// wrapping around to the start.
func (l *Layout) FindWords(phrase []string) ([]Word, bool) {
	ordered := make([]Word, len(l.Words))
	copy(ordered, l.Words)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Row != ordered[j].Row {
			return ordered[i].Row < ordered[j].Row
		}
		return ordered[i].Col < ordered[j].Col
	})
	used := make([]bool, len(ordered))
	match := func(text string, from, to int) int {
		for i := from; i < to; i++ {
			if !used[i] && strings.EqualFold(ordered[i].Text, text) {
				return i
			}
		}
		return -1
	}
	var words []Word
	cursor := 0
	for _, pw := range phrase {
		i := match(pw, cursor, len(ordered))
		if i < 0 {
			i = match(pw, 0, cursor)
		}
		if i < 0 {
			return nil, false
		}
		used[i] = true
		words = append(words, ordered[i])
		if i+1 > cursor {
			cursor = i + 1
		}
	}
	return words, true
}

// Cells returns the grid cells the word covers.
func (w Word) Cells() [][2]int {
	cells := make([][2]int, 0, len(w.Text))
	for i := range []rune(w.Text) {
		if w.Vertical {
			cells = append(cells, [2]int{w.Row + i, w.Col})
		} else {
			cells = append(cells, [2]int{w.Row, w.Col + i})
		}
	}
	return cells
}
