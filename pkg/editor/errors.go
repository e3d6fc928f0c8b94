package editor

import "fmt"

// NotFoundError reports a referenced id absent from the active lexicon.
type NotFoundError struct {
	Kind string // "entry", "sense" or "synset"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// InvalidShapeError reports a missing required field or a value outside its
// closed enumeration. The operation that produced it made no changes.
type InvalidShapeError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidShapeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// AmbiguousMatchError reports a lemma lookup that matched more than one
// entry where exactly one was required.
type AmbiguousMatchError struct {
	Lemma   string
	Matches int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("lemma %q matches %d entries; pass a part of speech to disambiguate",
		e.Lemma, e.Matches)
}

// ValidationWarning signals that a relation was created with a type outside
// the supplied vocabulary. It is a return value, never an error: the
// relation exists either way.
type ValidationWarning struct {
	RelationType string
	Message      string
}

func (w *ValidationWarning) String() string { return w.Message }
