package editor

import "github.com/bond-lab/wn-edit/pkg/lmf"

// index holds the derived lookup maps over the record model. It is either
// rebuilt from scratch after a bulk load or updated incrementally by every
// mutation; after any operation it must agree exactly with the lexicon.
type index struct {
	entryByID      map[string]*lmf.Entry
	senseByID      map[string]*lmf.Sense
	senseOwner     map[string]*lmf.Entry
	synsetByID     map[string]*lmf.Synset
	entriesByLemma map[string][]*lmf.Entry
}

func newIndex() *index {
	return &index{
		entryByID:      make(map[string]*lmf.Entry),
		senseByID:      make(map[string]*lmf.Sense),
		senseOwner:     make(map[string]*lmf.Entry),
		synsetByID:     make(map[string]*lmf.Synset),
		entriesByLemma: make(map[string][]*lmf.Entry),
	}
}

// rebuild reconstructs every map from the lexicon in one pass.
func (ix *index) rebuild(lex *lmf.Lexicon) {
	ix.entryByID = make(map[string]*lmf.Entry, len(lex.Entries))
	ix.senseByID = make(map[string]*lmf.Sense)
	ix.senseOwner = make(map[string]*lmf.Entry)
	ix.synsetByID = make(map[string]*lmf.Synset, len(lex.Synsets))
	ix.entriesByLemma = make(map[string][]*lmf.Entry)

	for _, e := range lex.Entries {
		ix.addEntry(e)
	}
	for _, ss := range lex.Synsets {
		ix.addSynset(ss)
	}
}

func (ix *index) addEntry(e *lmf.Entry) {
	ix.entryByID[e.ID] = e
	lemma := e.Lemma.WrittenForm
	ix.entriesByLemma[lemma] = append(ix.entriesByLemma[lemma], e)
	for _, s := range e.Senses {
		ix.addSense(e, s)
	}
}

func (ix *index) removeEntry(e *lmf.Entry) {
	delete(ix.entryByID, e.ID)
	lemma := e.Lemma.WrittenForm
	kept := ix.entriesByLemma[lemma][:0]
	for _, cand := range ix.entriesByLemma[lemma] {
		if cand.ID != e.ID {
			kept = append(kept, cand)
		}
	}
	if len(kept) == 0 {
		delete(ix.entriesByLemma, lemma)
	} else {
		ix.entriesByLemma[lemma] = kept
	}
	for _, s := range e.Senses {
		ix.removeSense(s)
	}
}

func (ix *index) addSense(owner *lmf.Entry, s *lmf.Sense) {
	ix.senseByID[s.ID] = s
	ix.senseOwner[s.ID] = owner
}

func (ix *index) removeSense(s *lmf.Sense) {
	delete(ix.senseByID, s.ID)
	delete(ix.senseOwner, s.ID)
}

func (ix *index) addSynset(ss *lmf.Synset) {
	ix.synsetByID[ss.ID] = ss
}

func (ix *index) removeSynset(ss *lmf.Synset) {
	delete(ix.synsetByID, ss.ID)
}
