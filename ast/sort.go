package ast

// Sort is an identifier plus a possibly-empty ordered sequence of
// sub-sorts. A leaf sort (no sub-sorts) prints as its identifier alone; a
// parameterized sort prints as "(id sub1 ... subn)".
type Sort struct {
	Id   Identifier
	Subs []Sort
}

// NewLeafSort builds a sort with no sub-sorts, e.g. "Int" or "Bool".
func NewLeafSort(id Identifier) Sort {
	return Sort{Id: id}
}

// NewParameterizedSort builds a sort with one or more sub-sorts, e.g.
// "(Array Int Int)". subs must be non-empty; callers that want a leaf sort
// should use NewLeafSort instead.
func NewParameterizedSort(id Identifier, sub0 Sort, subs ...Sort) Sort {
	all := make([]Sort, 0, 1+len(subs))
	all = append(all, sub0)
	all = append(all, subs...)
	return Sort{Id: id, Subs: all}
}
