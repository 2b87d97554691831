// Package candidate normalises candidate identifiers and joins per-candidate
// tables on them.
package candidate

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyJoin reports an inner join without a single shared key.
var ErrEmptyJoin = errors.New("inner join produced no rows")

// {base}_{NNNN}_fv or _complex plus tool decorations; the base may itself
// contain a four-digit token, so the last index before the suffix wins.
var (
	suffixedID = regexp.MustCompile(`^(.+_\d{4})_(?:fv|complex)(?:_.*)?$`)
	indexedID  = regexp.MustCompile(`^(.+_\d{4})(?:_.*)?$`)
)

// Canonical maps every spelling of a library member id to "{base}_{NNNN}_fv".
// Ids without a four-digit index are returned unchanged. Canonical is
// idempotent.
func Canonical(id string) string {
	id = strings.TrimSpace(id)
	m := suffixedID.FindStringSubmatch(id)
	if m == nil {
		m = indexedID.FindStringSubmatch(id)
	}
	if m == nil {
		return id
	}
	return m[1] + "_fv"
}

// StripSuffixes removes every "_fv" and "_complex" occurrence from id.
func StripSuffixes(id string) string {
	id = strings.ReplaceAll(id, "_complex", "")
	return strings.ReplaceAll(id, "_fv", "")
}

// Index maps keys to the first row carrying them.
type Index[T any] map[string]T

// NewIndex keys rows by key(row). Later duplicates are ignored.
func NewIndex[T any](rows []T, key func(T) string) Index[T] {
	idx := make(Index[T], len(rows))
	for _, r := range rows {
		k := key(r)
		if _, dup := idx[k]; dup {
			continue
		}
		idx[k] = r
	}
	return idx
}

// Join is an inner join: for every left row whose key is present in right,
// merge(left, right) is emitted. Output follows left order; left rows with
// a duplicate key after the first are dropped. Rows missing from either
// side are dropped silently.
func Join[L, R, O any](left []L, lkey func(L) string, right Index[R], merge func(L, R) O) []O {
	out := make([]O, 0, len(left))
	seen := make(map[string]struct{}, len(left))
	for _, l := range left {
		k := lkey(l)
		if _, dup := seen[k]; dup {
			continue
		}
		r, ok := right[k]
		if !ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, merge(l, r))
	}
	return out
}
