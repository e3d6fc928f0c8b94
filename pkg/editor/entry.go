package editor

import (
	"strings"

	"github.com/bond-lab/wn-edit/pkg/lmf"
	"github.com/bond-lab/wn-edit/pkg/vocab"
)

// CreateEntry creates a lexical entry with zero senses. A bare entry is an
// allowed transient state: it is expected to gain a sense through
// AddWordToSynset, and is swept away by the next synset-removal cascade if
// it still has none by then.
func (e *Editor) CreateEntry(lemma, pos string, forms ...string) (*lmf.Entry, error) {
	lemma = strings.TrimSpace(lemma)
	if lemma == "" {
		return nil, &InvalidShapeError{Field: "lemma", Reason: "must be non-empty"}
	}
	if !vocab.PartsOfSpeech.Contains(pos) {
		return nil, &InvalidShapeError{
			Field: "part of speech", Value: pos,
			Reason: "not a recognized tag",
		}
	}

	safe := strings.ReplaceAll(lemma, " ", "_")
	entry := &lmf.Entry{
		ID:     e.newID(safe, pos),
		Lemma:  lmf.Lemma{WrittenForm: lemma, PartOfSpeech: pos},
		Senses: []*lmf.Sense{},
	}
	for _, f := range forms {
		entry.Forms = append(entry.Forms, &lmf.Form{WrittenForm: f})
	}

	e.lex.Entries = append(e.lex.Entries, entry)
	e.idx.addEntry(entry)
	return entry, nil
}

// GetEntry returns the entry with the given id, if present.
func (e *Editor) GetEntry(id string) (*lmf.Entry, bool) {
	entry, ok := e.idx.entryByID[id]
	return entry, ok
}

// GetSense returns the sense with the given id, if present.
func (e *Editor) GetSense(id string) (*lmf.Sense, bool) {
	s, ok := e.idx.senseByID[id]
	return s, ok
}

// FindEntries returns the entries whose lemma matches exactly, in insertion
// order. A non-empty pos narrows the match. Lookup is by index; nothing is
// mutated.
func (e *Editor) FindEntries(lemma, pos string) []*lmf.Entry {
	candidates := e.idx.entriesByLemma[lemma]
	out := make([]*lmf.Entry, 0, len(candidates))
	for _, entry := range candidates {
		if pos == "" || entry.Lemma.PartOfSpeech == pos {
			out = append(out, entry)
		}
	}
	return out
}

// AddWordToSynset attaches lemma to the synset: the matching entry is
// reused or created, and a sense linking it to the synset is added unless
// one already exists.
//
// With pos empty the lookup is by lemma alone: a single match is used
// whatever its part of speech, no match creates an entry with the synset's
// part of speech, and several matches are refused as ambiguous rather than
// ranked.
func (e *Editor) AddWordToSynset(synsetID, lemma, pos string) (*lmf.Entry, error) {
	ss, ok := e.idx.synsetByID[synsetID]
	if !ok {
		return nil, &NotFoundError{Kind: "synset", ID: synsetID}
	}

	var entry *lmf.Entry
	if pos != "" {
		if matches := e.FindEntries(lemma, pos); len(matches) > 0 {
			entry = matches[0]
		}
	} else {
		matches := e.FindEntries(lemma, "")
		switch len(matches) {
		case 0:
		case 1:
			entry = matches[0]
		default:
			return nil, &AmbiguousMatchError{Lemma: lemma, Matches: len(matches)}
		}
	}

	if entry == nil {
		createPOS := pos
		if createPOS == "" {
			createPOS = ss.PartOfSpeech
		}
		var err error
		entry, err = e.CreateEntry(lemma, createPOS)
		if err != nil {
			return nil, err
		}
	}

	for _, s := range entry.Senses {
		if s.Synset == synsetID {
			return entry, nil
		}
	}

	sense := &lmf.Sense{
		ID:     entry.ID + "-" + synsetID,
		Synset: synsetID,
	}
	entry.Senses = append(entry.Senses, sense)
	e.idx.addSense(entry, sense)
	return entry, nil
}

// RemoveEntry removes the entry and all of its senses, and prunes every
// relation elsewhere that targeted one of those senses. Synsets the senses
// pointed to are left alone; they live independently of their members.
func (e *Editor) RemoveEntry(id string) error {
	entry, ok := e.idx.entryByID[id]
	if !ok {
		return &NotFoundError{Kind: "entry", ID: id}
	}

	removed := make(map[string]bool, len(entry.Senses))
	for _, s := range entry.Senses {
		removed[s.ID] = true
	}

	kept := e.lex.Entries[:0]
	for _, cand := range e.lex.Entries {
		if cand.ID != id {
			kept = append(kept, cand)
		}
	}
	e.lex.Entries = kept
	e.idx.removeEntry(entry)

	e.pruneRelations(removed)
	return nil
}

// AddSenseCount appends a corpus frequency annotation to a sense. Counts
// must be non-negative.
func (e *Editor) AddSenseCount(senseID string, value int) error {
	s, ok := e.idx.senseByID[senseID]
	if !ok {
		return &NotFoundError{Kind: "sense", ID: senseID}
	}
	if value < 0 {
		return &InvalidShapeError{Field: "count", Reason: "must be non-negative"}
	}
	s.Counts = append(s.Counts, &lmf.Count{Value: value})
	return nil
}

// SetAdjposition tags a sense with an adjective position. Only senses of
// adjectival entries may carry one.
func (e *Editor) SetAdjposition(senseID, adjposition string) error {
	s, ok := e.idx.senseByID[senseID]
	if !ok {
		return &NotFoundError{Kind: "sense", ID: senseID}
	}
	if !vocab.Adjpositions.Contains(adjposition) {
		return &InvalidShapeError{
			Field: "adjposition", Value: adjposition,
			Reason: "not a recognized tag",
		}
	}
	owner := e.idx.senseOwner[senseID]
	if !vocab.Adjectival(owner.Lemma.PartOfSpeech) {
		return &InvalidShapeError{
			Field: "adjposition", Value: adjposition,
			Reason: "entry " + owner.ID + " is not adjectival",
		}
	}
	s.Adjposition = adjposition
	return nil
}
