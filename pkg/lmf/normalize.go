package lmf

import (
	"reflect"
	"strings"
)

// Clone returns a deep copy of res. The editor hands copies to the commit
// sink so that later edits cannot mutate a snapshot under it.
func Clone(res *Resource) *Resource {
	if res == nil {
		return nil
	}
	out := &Resource{LMFVersion: res.LMFVersion}
	for _, lex := range res.Lexicons {
		out.Lexicons = append(out.Lexicons, cloneLexicon(lex))
	}
	return out
}

func cloneLexicon(lex *Lexicon) *Lexicon {
	c := *lex
	c.Entries = make([]*Entry, 0, len(lex.Entries))
	c.Synsets = make([]*Synset, 0, len(lex.Synsets))
	for _, e := range lex.Entries {
		c.Entries = append(c.Entries, cloneEntry(e))
	}
	for _, ss := range lex.Synsets {
		c.Synsets = append(c.Synsets, cloneSynset(ss))
	}
	return &c
}

func cloneEntry(e *Entry) *Entry {
	c := *e
	c.Forms = make([]*Form, 0, len(e.Forms))
	for _, f := range e.Forms {
		fc := *f
		c.Forms = append(c.Forms, &fc)
	}
	c.Senses = make([]*Sense, 0, len(e.Senses))
	for _, s := range e.Senses {
		c.Senses = append(c.Senses, cloneSense(s))
	}
	return &c
}

func cloneSense(s *Sense) *Sense {
	c := *s
	c.Relations = cloneRelations(s.Relations)
	c.Examples = cloneExamples(s.Examples)
	c.Counts = make([]*Count, 0, len(s.Counts))
	for _, n := range s.Counts {
		nc := *n
		c.Counts = append(c.Counts, &nc)
	}
	return &c
}

func cloneSynset(ss *Synset) *Synset {
	c := *ss
	c.Definitions = make([]*Definition, 0, len(ss.Definitions))
	for _, d := range ss.Definitions {
		dc := *d
		c.Definitions = append(c.Definitions, &dc)
	}
	c.Relations = cloneRelations(ss.Relations)
	c.Examples = cloneExamples(ss.Examples)
	return &c
}

func cloneRelations(rels []*Relation) []*Relation {
	out := make([]*Relation, 0, len(rels))
	for _, r := range rels {
		rc := *r
		out = append(out, &rc)
	}
	return out
}

func cloneExamples(exs []*Example) []*Example {
	out := make([]*Example, 0, len(exs))
	for _, ex := range exs {
		ec := *ex
		out = append(out, &ec)
	}
	return out
}

// Normalize returns a copy of res with whitespace-only differences in free
// text removed. Order of repeatable children is kept as-is: it is part of
// the logical content.
func Normalize(res *Resource) *Resource {
	out := Clone(res)
	for _, lex := range out.Lexicons {
		for _, ss := range lex.Synsets {
			for _, d := range ss.Definitions {
				d.Text = strings.TrimSpace(d.Text)
			}
			for _, ex := range ss.Examples {
				ex.Text = strings.TrimSpace(ex.Text)
			}
		}
		for _, e := range lex.Entries {
			for _, s := range e.Senses {
				for _, ex := range s.Examples {
					ex.Text = strings.TrimSpace(ex.Text)
				}
			}
		}
	}
	return out
}

// Equal reports whether a and b describe the same logical resource, i.e.
// they are identical after normalization.
func Equal(a, b *Resource) bool {
	return reflect.DeepEqual(Normalize(a), Normalize(b))
}
