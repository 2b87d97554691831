// Package tables reads the inter-stage CSV/TSV tables back into domain
// records. Errors name the file, line and column of the offending cell.
package tables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when a required column is absent.
var ErrMissingColumn = errors.New("missing column")

// CellError locates a malformed cell.
type CellError struct {
	Path   string
	Line   int
	Column int
	Name   string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s:%d:%d: column %s: %v", e.Path, e.Line, e.Column, e.Name, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// sheet is one decoded table with its header index.
type sheet struct {
	path string
	cr   *csv.Reader
	cols map[string]int
	head []string
}

func comma(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return '\t'
	}
	return ','
}

// each reads path and calls fn for every data row.
func each(path string, fn func(r row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return eachReader(path, f, fn)
}

func eachReader(path string, r io.Reader, fn func(r row) error) error {
	cr := csv.NewReader(r)
	cr.Comma = comma(path)
	cr.FieldsPerRecord = 0
	cr.ReuseRecord = true
	head, err := cr.Read()
	if err == io.EOF {
		return fmt.Errorf("%s: empty table", path)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s := &sheet{path: path, cr: cr, cols: make(map[string]int, len(head))}
	for i, h := range head {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		s.head = append(s.head, h)
		if _, dup := s.cols[h]; !dup {
			s.cols[h] = i
		}
	}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := fn(row{s: s, rec: rec}); err != nil {
			return err
		}
	}
}

func (s *sheet) has(name string) bool {
	_, ok := s.cols[name]
	return ok
}

func (s *sheet) require(names ...string) error {
	var missing []string
	for _, n := range names {
		if !s.has(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", s.path, ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

type row struct {
	s   *sheet
	rec []string
}

func (r row) cellErr(name string, err error) error {
	i := r.s.cols[name]
	line, col := r.s.cr.FieldPos(i)
	return &CellError{Path: r.s.path, Line: line, Column: col, Name: name, Err: err}
}

// str returns the trimmed cell, or "" for an absent column.
func (r row) str(name string) string {
	i, ok := r.s.cols[name]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

func (r row) float(name string) (float64, error) {
	v, err := r.optFloat(name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return math.NaN(), nil
	}
	return *v, nil
}

// optFloat is nil for an empty cell, "nan" or an absent column.
func (r row) optFloat(name string) (*float64, error) {
	s := r.str(name)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, r.cellErr(name, err)
	}
	if math.IsNaN(v) {
		return nil, nil
	}
	return &v, nil
}

func (r row) int(name string) (int, error) {
	s := r.str(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) {
			return 0, r.cellErr(name, err)
		}
		v = int(f)
	}
	return v, nil
}

func (r row) bool(name string) (bool, error) {
	switch strings.ToLower(r.str(name)) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no", "":
		return false, nil
	}
	return false, r.cellErr(name, fmt.Errorf("invalid flag %q", r.str(name)))
}

// collector collects the first parse error across a row.
type collector struct {
	r   row
	err error
}

func (c *collector) float(name string) float64 {
	v, err := c.r.float(name)
	c.keep(err)
	return v
}

func (c *collector) optFloat(name string) *float64 {
	v, err := c.r.optFloat(name)
	c.keep(err)
	return v
}

func (c *collector) int(name string) int {
	v, err := c.r.int(name)
	c.keep(err)
	return v
}

func (c *collector) bool(name string) bool {
	v, err := c.r.bool(name)
	c.keep(err)
	return v
}

func (c *collector) keep(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}
