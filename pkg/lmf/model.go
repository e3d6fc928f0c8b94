// Package lmf holds the in-memory model of a WN-LMF lexical resource and
// the codec for its XML exchange format.
//
// The structs mirror the nested layout of the format: a Resource owns
// Lexicons, a Lexicon owns Entries and Synsets, an Entry owns Senses.
// Repeatable children keep document order; the codec round-trips that order
// verbatim. Records are held by pointer so that editing code can index them
// by id without the indexes going stale when sibling slices grow.
package lmf

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// DefaultVersion is the WN-LMF schema version written when nothing else is
// requested.
const DefaultVersion = "1.4"

// Resource is the top-level container of the exchange format.
type Resource struct {
	XMLName xml.Name `xml:"LexicalResource"`
	// LMFVersion is carried in the document's DOCTYPE, not as an
	// attribute, so the codec handles it outside of struct tags.
	LMFVersion string     `xml:"-"`
	Lexicons   []*Lexicon `xml:"Lexicon"`
}

// Lexicon is one named collection of entries and synsets under a single
// identity and version.
type Lexicon struct {
	ID       string `xml:"id,attr"`
	Label    string `xml:"label,attr"`
	Language string `xml:"language,attr"`
	Email    string `xml:"email,attr"`
	License  string `xml:"license,attr"`
	Version  string `xml:"version,attr"`
	URL      string `xml:"url,attr,omitempty"`
	Citation string `xml:"citation,attr,omitempty"`

	Entries []*Entry  `xml:"LexicalEntry"`
	Synsets []*Synset `xml:"Synset"`
}

// Entry is a lexical entry: one headword with a part of speech, optional
// alternate written forms and an ordered list of senses.
type Entry struct {
	ID     string   `xml:"id,attr"`
	Lemma  Lemma    `xml:"Lemma"`
	Forms  []*Form  `xml:"Form"`
	Senses []*Sense `xml:"Sense"`
}

// Lemma is the canonical written form of an entry.
type Lemma struct {
	WrittenForm  string `xml:"writtenForm,attr"`
	PartOfSpeech string `xml:"partOfSpeech,attr"`
	Script       string `xml:"script,attr,omitempty"`
}

// Form is an alternate (e.g. inflected) written form of an entry.
type Form struct {
	WrittenForm string `xml:"writtenForm,attr"`
	Script      string `xml:"script,attr,omitempty"`
}

// Sense links its owning entry to one synset. Adjposition is only
// meaningful for adjectival entries.
type Sense struct {
	ID          string      `xml:"id,attr"`
	Synset      string      `xml:"synset,attr"`
	Adjposition string      `xml:"adjposition,attr,omitempty"`
	Relations   []*Relation `xml:"SenseRelation"`
	Examples    []*Example  `xml:"Example"`
	Counts      []*Count    `xml:"Count"`
}

// Count is a corpus frequency annotation on a sense. The value is the
// element's character data; encoding/xml only unmarshals character data
// into strings, so the conversion is done by hand.
type Count struct {
	Value int
}

func (c *Count) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Text string `xml:",chardata"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw.Text))
	if err != nil {
		return fmt.Errorf("count value %q: %w", raw.Text, err)
	}
	c.Value = v
	return nil
}

func (c *Count) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(strconv.Itoa(c.Value), start)
}

// Synset is a cluster of senses sharing one meaning.
type Synset struct {
	ID           string        `xml:"id,attr"`
	ILI          string        `xml:"ili,attr"`
	PartOfSpeech string        `xml:"partOfSpeech,attr"`
	Definitions  []*Definition `xml:"Definition"`
	Relations    []*Relation   `xml:"SynsetRelation"`
	Examples     []*Example    `xml:"Example"`
}

// Definition is a free-text gloss, optionally language-tagged.
type Definition struct {
	Language string `xml:"language,attr,omitempty"`
	Text     string `xml:",chardata"`
}

// Example is a usage example, optionally language-tagged.
type Example struct {
	Language string `xml:"language,attr,omitempty"`
	Text     string `xml:",chardata"`
}

// Relation is a directed typed edge. The same shape serves synset-to-synset
// and sense-to-(sense-or-synset) edges; which one it is follows from the
// element it is attached to.
type Relation struct {
	Type       string `xml:"relType,attr"`
	Target     string `xml:"target,attr"`
	Confidence string `xml:"confidenceScore,attr,omitempty"`
}
