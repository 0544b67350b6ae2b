package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrLayout = errors.New("invalid layout")

// ReadLayout parses a mine layout: Rows lines of Columns characters,
// '*' for a mine and '.' for a safe cell. Blank lines and lines starting
// with '#' are skipped.
func ReadLayout(reader io.Reader) (mines []bool, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	mines = make([]bool, 0, CellCount)
	row := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		s := strings.TrimRight(scanner.Text(), " \t\r")
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if row == Rows {
			return nil, fmt.Errorf("line %d: more than %d rows: %w", lineNo, Rows, ErrLayout)
		}
		if len(s) != Columns {
			return nil, fmt.Errorf("line %d: want %d cells, got %d: %w", lineNo, Columns, len(s), ErrLayout)
		}
		for col, char := range s {
			switch char {
			case '*':
				mines = append(mines, true)
			case '.':
				mines = append(mines, false)
			default:
				return nil, fmt.Errorf("line %d col %d: unexpected %q: %w", lineNo, col+1, char, ErrLayout)
			}
		}
		row++
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	if row != Rows {
		return nil, fmt.Errorf("want %d rows, got %d: %w", Rows, row, ErrLayout)
	}
	return mines, nil
}
