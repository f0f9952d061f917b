package domain

// Placeholder is a sentinel embedded in a task's declared inputs that is
// substituted, at dispatch time, with the result of another task identified
// by name. Before preprocessing only TargetName is set; after preprocessing
// ResolvedID also carries the referenced task's assigned identity.
//
// Two phases are modeled by the same struct rather than two distinct types
// (ResultPlaceholder / ResolvedPlaceholder) because the preprocessor mutates
// a single field exactly once — ResolvedID starts nil and is set at most
// once, which keeps the user-facing constructor (Result) trivial while
// still making "resolved" a checkable state (ResolvedID != nil).
type Placeholder struct {
	TargetName string
	ResolvedID *int
}

// Result constructs a declared, unresolved placeholder referencing the
// task named targetName. This is the value users embed in a task's
// positional or keyword inputs.
func Result(targetName string) *Placeholder {
	return &Placeholder{TargetName: targetName}
}

// ResolveTo stamps the placeholder with the identity of its referenced task.
// It is called exactly once, by the preprocessor.
func (p *Placeholder) ResolveTo(id int) {
	p.ResolvedID = &id
}

// IsResolved reports whether the preprocessor has stamped this placeholder.
func (p *Placeholder) IsResolved() bool {
	return p.ResolvedID != nil
}
