package symbols

import "sync"

// maxSuggestDistance bounds the edit distance of a suggestion.
const maxSuggestDistance = 2

// editRows holds the two DP rows reused between distance computations.
type editRows struct {
	prev []int
	cur  []int
}

var editRowsPool = sync.Pool{New: func() any { return &editRows{} }}

func (e *editRows) grow(n int) {
	if cap(e.prev) < n {
		e.prev = make([]int, n)
		e.cur = make([]int, n)
	}

	e.prev = e.prev[:n]
	e.cur = e.cur[:n]
}

// distance is the Levenshtein distance between a and b: the minimum number of
// single-rune insertions, deletions and substitutions turning a into b.
func (e *editRows) distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(rb) == 0 {
		return len(ra)
	}

	e.grow(len(rb) + 1)

	for j := range e.prev {
		e.prev[j] = j
	}

	for i, ca := range ra {
		e.cur[0] = i + 1

		for j, cb := range rb {
			cost := 1
			if ca == cb {
				cost = 0
			}

			e.cur[j+1] = min(e.prev[j+1]+1, e.cur[j]+1, e.prev[j]+cost)
		}

		e.prev, e.cur = e.cur, e.prev
	}

	return e.prev[len(rb)]
}

// Suggest returns the resolvable name of ns closest to name, or "" when none
// is within a small edit distance. Ties go to the lowest identifier.
func (r *Resolver) Suggest(ns Namespace, name string) string {
	rows, _ := editRowsPool.Get().(*editRows) //nolint:errcheck // pool only holds *editRows
	defer editRowsPool.Put(rows)

	best, bestDist := "", maxSuggestDistance+1

	consider := func(candidate string) {
		if candidate == name {
			return
		}

		if d := rows.distance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}

	switch ns {
	case NamespaceField:
		for _, f := range r.table.Fields() {
			consider(f.Name)
		}
	case NamespaceKind, NamespaceKeyword:
		named := ns == NamespaceKind

		for _, sym := range r.table.Symbols() {
			if sym.Kind.Resolvable() && sym.Kind.Named() == named {
				consider(sym.Name)
			}
		}
	}

	return best
}
