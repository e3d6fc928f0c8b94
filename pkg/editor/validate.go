package editor

import (
	"fmt"

	"github.com/bond-lab/wn-edit/pkg/vocab"
)

// ValidateRelation classifies relType against a vocabulary. It never
// blocks: a type outside the vocabulary yields a warning and nothing else.
// Pure; safe to call without an editor.
func ValidateRelation(relType string, vocabulary vocab.Set) *ValidationWarning {
	if vocabulary.Contains(relType) {
		return nil
	}
	return &ValidationWarning{
		RelationType: relType,
		Message:      fmt.Sprintf("relation type %q is not in the vocabulary", relType),
	}
}

// Problem is one structural complaint from Check.
type Problem struct {
	Kind    string // record kind the complaint is about
	ID      string
	Message string
}

// Check runs the advisory structural validation over the active lexicon:
// dangling sense-to-synset references, dangling relation targets, and
// entries without senses. It reports, never repairs; an empty result means
// the snapshot satisfies the invariants a commit sink is entitled to
// expect.
func (e *Editor) Check() []Problem {
	var problems []Problem

	for _, entry := range e.lex.Entries {
		if len(entry.Senses) == 0 {
			problems = append(problems, Problem{
				Kind: "entry", ID: entry.ID,
				Message: "entry has no senses",
			})
		}
		for _, s := range entry.Senses {
			if _, ok := e.idx.synsetByID[s.Synset]; !ok {
				problems = append(problems, Problem{
					Kind: "sense", ID: s.ID,
					Message: fmt.Sprintf("references missing synset %s", s.Synset),
				})
			}
			for _, r := range s.Relations {
				_, isSense := e.idx.senseByID[r.Target]
				_, isSynset := e.idx.synsetByID[r.Target]
				if !isSense && !isSynset {
					problems = append(problems, Problem{
						Kind: "sense", ID: s.ID,
						Message: fmt.Sprintf("relation %s targets missing record %s", r.Type, r.Target),
					})
				}
			}
		}
	}

	for _, ss := range e.lex.Synsets {
		for _, r := range ss.Relations {
			if _, ok := e.idx.synsetByID[r.Target]; !ok {
				problems = append(problems, Problem{
					Kind: "synset", ID: ss.ID,
					Message: fmt.Sprintf("relation %s targets missing synset %s", r.Type, r.Target),
				})
			}
		}
	}

	return problems
}
