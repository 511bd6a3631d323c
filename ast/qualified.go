package ast

// QualifiedIdentifier is an identifier optionally annotated with a sort:
// "(as id sort)". Equality is structural, including on the identifier and
// the (possibly absent) sort.
type QualifiedIdentifier struct {
	Id   Identifier
	Sort *Sort // nil when unannotated
}

// NewQualifiedIdentifier builds an unannotated qualified identifier.
func NewQualifiedIdentifier(id Identifier) QualifiedIdentifier {
	return QualifiedIdentifier{Id: id}
}

// NewAsQualifiedIdentifier builds a sort-annotated qualified identifier,
// i.e. "(as id sort)".
func NewAsQualifiedIdentifier(id Identifier, sort Sort) QualifiedIdentifier {
	return QualifiedIdentifier{Id: id, Sort: &sort}
}

func (QualifiedIdentifier) isTerm() {}
