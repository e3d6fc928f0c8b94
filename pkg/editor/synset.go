package editor

import (
	"fmt"
	"strings"

	"github.com/bond-lab/wn-edit/pkg/lmf"
	"github.com/bond-lab/wn-edit/pkg/vocab"
)

// SynsetSpec describes a synset to create. PartOfSpeech is required; every
// other field is optional. When Words is supplied, each word gets an entry
// (created or reused) with a sense linking to the new synset.
type SynsetSpec struct {
	ID           string // generated when empty
	PartOfSpeech string
	Definition   string
	Definitions  []string
	Examples     []string
	Words        []string
	ILI          string
}

// CreateSynset creates a synset and, if Words are given, wires each word to
// it through an entry and a fresh sense. Inputs are validated up front: on
// error nothing is created, not even partially.
func (e *Editor) CreateSynset(spec SynsetSpec) (*lmf.Synset, error) {
	if !vocab.PartsOfSpeech.Contains(spec.PartOfSpeech) {
		return nil, &InvalidShapeError{
			Field: "part of speech", Value: spec.PartOfSpeech,
			Reason: "not a recognized tag",
		}
	}
	for _, w := range spec.Words {
		if strings.TrimSpace(w) == "" {
			return nil, &InvalidShapeError{Field: "word", Reason: "must be non-empty"}
		}
	}

	id := spec.ID
	if id == "" {
		id = e.newID("synset", spec.PartOfSpeech)
	}
	if _, exists := e.idx.synsetByID[id]; exists {
		return nil, &InvalidShapeError{Field: "synset id", Value: id, Reason: "already in use"}
	}

	ss := &lmf.Synset{
		ID:           id,
		ILI:          spec.ILI,
		PartOfSpeech: spec.PartOfSpeech,
	}
	if spec.Definition != "" {
		ss.Definitions = append(ss.Definitions, &lmf.Definition{Text: spec.Definition})
	}
	for _, d := range spec.Definitions {
		ss.Definitions = append(ss.Definitions, &lmf.Definition{Text: d})
	}
	for _, ex := range spec.Examples {
		ss.Examples = append(ss.Examples, &lmf.Example{Text: ex})
	}

	e.lex.Synsets = append(e.lex.Synsets, ss)
	e.idx.addSynset(ss)

	for _, w := range spec.Words {
		if _, err := e.AddWordToSynset(id, w, spec.PartOfSpeech); err != nil {
			// Roll the synset and any entries already attached back out so
			// a failed create leaves no partial state behind.
			if rmErr := e.RemoveSynset(id); rmErr != nil {
				return nil, fmt.Errorf("rolling back synset %s: %w", id, rmErr)
			}
			return nil, err
		}
	}
	return ss, nil
}

// GetSynset returns the synset with the given id, if present.
func (e *Editor) GetSynset(id string) (*lmf.Synset, bool) {
	ss, ok := e.idx.synsetByID[id]
	return ss, ok
}

// SynsetPatch describes an in-place synset update. Definition, when
// non-empty, replaces all existing definitions; AddDefinitions and
// AddExamples append; ILI, when non-nil, replaces the interlingual id.
type SynsetPatch struct {
	Definition     string
	AddDefinitions []string
	AddExamples    []string
	ILI            *string
}

// ModifySynset applies patch to the synset with the given id.
func (e *Editor) ModifySynset(id string, patch SynsetPatch) (*lmf.Synset, error) {
	ss, ok := e.idx.synsetByID[id]
	if !ok {
		return nil, &NotFoundError{Kind: "synset", ID: id}
	}
	if patch.Definition != "" {
		ss.Definitions = []*lmf.Definition{{Text: patch.Definition}}
	}
	for _, d := range patch.AddDefinitions {
		ss.Definitions = append(ss.Definitions, &lmf.Definition{Text: d})
	}
	for _, ex := range patch.AddExamples {
		ss.Examples = append(ss.Examples, &lmf.Example{Text: ex})
	}
	if patch.ILI != nil {
		ss.ILI = *patch.ILI
	}
	return ss, nil
}

// RemoveSynset removes the synset and cascades: every sense referencing it
// goes, entries left with zero senses go, and every relation anywhere in
// the lexicon whose target was the synset or one of the removed senses is
// pruned. Dangling endpoints never survive a removal.
func (e *Editor) RemoveSynset(id string) error {
	ss, ok := e.idx.synsetByID[id]
	if !ok {
		return &NotFoundError{Kind: "synset", ID: id}
	}

	e.lex.Synsets = removeSynsetByID(e.lex.Synsets, id)
	e.idx.removeSynset(ss)

	// Strip senses that pointed at the removed synset.
	removed := map[string]bool{id: true}
	for _, entry := range e.lex.Entries {
		kept := entry.Senses[:0]
		for _, s := range entry.Senses {
			if s.Synset == id {
				removed[s.ID] = true
				e.idx.removeSense(s)
			} else {
				kept = append(kept, s)
			}
		}
		entry.Senses = kept
	}

	e.sweepOrphanEntries()
	e.pruneRelations(removed)
	return nil
}

// sweepOrphanEntries drops every entry left with zero senses. It runs as
// part of any synset removal cascade; a freshly created bare entry survives
// until the next cascade visits it.
func (e *Editor) sweepOrphanEntries() {
	kept := e.lex.Entries[:0]
	for _, entry := range e.lex.Entries {
		if len(entry.Senses) == 0 {
			e.idx.removeEntry(entry)
		} else {
			kept = append(kept, entry)
		}
	}
	e.lex.Entries = kept
}

// pruneRelations removes every relation in the lexicon whose target id is
// in the removed set.
func (e *Editor) pruneRelations(removed map[string]bool) {
	for _, ss := range e.lex.Synsets {
		ss.Relations = keepRelations(ss.Relations, removed)
	}
	for _, entry := range e.lex.Entries {
		for _, s := range entry.Senses {
			s.Relations = keepRelations(s.Relations, removed)
		}
	}
}

func keepRelations(rels []*lmf.Relation, removed map[string]bool) []*lmf.Relation {
	kept := rels[:0]
	for _, r := range rels {
		if !removed[r.Target] {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

func removeSynsetByID(synsets []*lmf.Synset, id string) []*lmf.Synset {
	kept := synsets[:0]
	for _, ss := range synsets {
		if ss.ID != id {
			kept = append(kept, ss)
		}
	}
	return kept
}

// relationConfig carries per-call relation options.
type relationConfig struct {
	skipValidation bool
}

// RelationOption adjusts how a relation is added.
type RelationOption func(*relationConfig)

// SkipValidation suppresses the relation-type vocabulary check. The
// relation is created either way; this only silences the warning.
func SkipValidation() RelationOption {
	return func(c *relationConfig) { c.skipValidation = true }
}

// AddSynsetRelation adds a typed directed edge between two synsets. Both
// endpoints must exist in the active lexicon. A type outside the synset
// relation vocabulary yields a non-nil warning; the relation is appended
// regardless, preserving insertion order.
func (e *Editor) AddSynsetRelation(sourceID, targetID, relType string, opts ...RelationOption) (*ValidationWarning, error) {
	var cfg relationConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	src, ok := e.idx.synsetByID[sourceID]
	if !ok {
		return nil, &NotFoundError{Kind: "synset", ID: sourceID}
	}
	if _, ok := e.idx.synsetByID[targetID]; !ok {
		return nil, &NotFoundError{Kind: "synset", ID: targetID}
	}

	var warn *ValidationWarning
	if !cfg.skipValidation {
		warn = ValidateRelation(relType, e.synsetVocab)
	}
	src.Relations = append(src.Relations, &lmf.Relation{Type: relType, Target: targetID})
	return warn, nil
}

// AddSenseRelation adds a typed directed edge from a sense to another sense
// or to a synset.
func (e *Editor) AddSenseRelation(sourceID, targetID, relType string, opts ...RelationOption) (*ValidationWarning, error) {
	var cfg relationConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	src, ok := e.idx.senseByID[sourceID]
	if !ok {
		return nil, &NotFoundError{Kind: "sense", ID: sourceID}
	}
	_, isSense := e.idx.senseByID[targetID]
	_, isSynset := e.idx.synsetByID[targetID]
	if !isSense && !isSynset {
		return nil, &NotFoundError{Kind: "sense or synset", ID: targetID}
	}

	var warn *ValidationWarning
	if !cfg.skipValidation {
		warn = ValidateRelation(relType, e.senseVocab)
	}
	src.Relations = append(src.Relations, &lmf.Relation{Type: relType, Target: targetID})
	return warn, nil
}
