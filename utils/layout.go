package utils

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/glife/model"
)

// ErrMalformedLayout is returned when a layout file cannot be parsed
var ErrMalformedLayout = errors.New("malformed layout")

// Layout is an initial board read from a layout file
type Layout struct {
	Rows      int
	Cols      int
	AliveChar byte
	Cells     []model.Cell // row-major
}

// Board builds the generation-1 board from the layout
func (l Layout) Board() (*model.Board, error) {
	return model.NewBoard(l.Rows, l.Cols, l.Cells)
}

// LoadLayout reads a layout file
func LoadLayout(filename string) (Layout, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Layout{}, errors.Wrapf(err, "[LoadLayout] failed to open file: %+v", filename)
	}
	defer f.Close()

	layout, err := ParseLayout(f)
	if err != nil {
		return Layout{}, errors.Wrapf(err, "[LoadLayout] file: %+v", filename)
	}
	return layout, nil
}

/*
ParseLayout reads the layout format:

	rows cols
	<alive char>
	<rows lines of cols characters>

A cell is live where its line holds the alive char. Short lines are padded with dead
cells, characters past cols are ignored, and missing trailing lines are dead rows.
*/
func ParseLayout(r io.Reader) (Layout, error) {
	var (
		layout  Layout
		scanner = bufio.NewScanner(r)
	)

	if !scanner.Scan() {
		return layout, errors.Wrap(ErrMalformedLayout, "missing dimensions line")
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 {
		return layout, errors.Wrapf(ErrMalformedLayout, "dimensions line %q: want \"rows cols\"", scanner.Text())
	}
	var err error
	if layout.Rows, err = parseDimension(fields[0]); err != nil {
		return layout, errors.Wrap(err, "rows")
	}
	if layout.Cols, err = parseDimension(fields[1]); err != nil {
		return layout, errors.Wrap(err, "cols")
	}

	if !scanner.Scan() || strings.TrimRight(scanner.Text(), "\r") == "" {
		return layout, errors.Wrap(ErrMalformedLayout, "missing alive character line")
	}
	layout.AliveChar = scanner.Text()[0]

	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if row >= layout.Rows {
			if strings.TrimSpace(line) != "" {
				return layout, errors.Wrapf(ErrMalformedLayout, "more than %d grid lines", layout.Rows)
			}
			continue
		}
		for col := 0; col < layout.Cols && col < len(line); col++ {
			if line[col] == layout.AliveChar {
				layout.Cells = append(layout.Cells, model.Cell{Row: row, Col: col})
			}
		}
		row++
	}
	if err = scanner.Err(); err != nil {
		return layout, errors.Wrap(err, "[ParseLayout] read failed")
	}
	return layout, nil
}

func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrMalformedLayout, "dimension %q is not a non-negative integer", s)
	}
	return n, nil
}
