// Package editor implements in-memory editing of a WN-LMF lexical
// resource: create, modify and remove entries, senses, synsets and
// relations while keeping the lookup indexes and referential invariants
// intact.
//
// An Editor owns exactly one active lexicon. All operations are
// synchronous and assume a single writer; callers that share an Editor
// across goroutines must serialize access themselves.
package editor

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/bond-lab/wn-edit/pkg/lmf"
	"github.com/bond-lab/wn-edit/pkg/vocab"
)

// Built-in defaults for new-lexicon metadata. Callers can override them per
// field through Options; the wnedit CLI additionally layers config-file and
// environment defaults on top of these.
const (
	DefaultLanguage       = "en"
	DefaultEmail          = "user@example.com"
	DefaultLicense        = "https://creativecommons.org/licenses/by/4.0/"
	DefaultLexiconVersion = "1.0"
)

// Options carries caller overrides for lexicon identity and versioning.
// Resolution order per field: explicit option > value loaded from source >
// built-in default.
type Options struct {
	ID       string
	Label    string
	Language string
	Email    string
	License  string
	Version  string
	URL      string
	Citation string

	// LMFVersion is the schema version to write on export. When empty,
	// exports reuse the version the source was read with (or
	// lmf.DefaultVersion for new lexicons).
	LMFVersion string

	// SynsetRelationVocab and SenseRelationVocab replace the built-in
	// relation-type vocabularies when non-nil.
	SynsetRelationVocab vocab.Set
	SenseRelationVocab  vocab.Set
}

// Editor edits one lexicon of a lexical resource in memory.
type Editor struct {
	res *lmf.Resource
	lex *lmf.Lexicon
	idx *index

	synsetVocab vocab.Set
	senseVocab  vocab.Set

	// Schema version seen on read vs. requested for export. They are kept
	// apart so a caller can load a 1.1 document and write 1.4; when no
	// write version is requested the read version is reused.
	lmfRead  string
	lmfWrite string
}

// New creates an editor for a brand-new empty lexicon. Options.ID is
// required; every other field falls back to the built-in defaults.
func New(opts Options) (*Editor, error) {
	if opts.ID == "" {
		return nil, &InvalidShapeError{Field: "lexicon id", Reason: "required for a new lexicon"}
	}
	lex := &lmf.Lexicon{
		ID:       opts.ID,
		Label:    orDefault(opts.Label, opts.ID),
		Language: orDefault(opts.Language, DefaultLanguage),
		Email:    orDefault(opts.Email, DefaultEmail),
		License:  orDefault(opts.License, DefaultLicense),
		Version:  orDefault(opts.Version, DefaultLexiconVersion),
		URL:      opts.URL,
		Citation: opts.Citation,
		Entries:  []*lmf.Entry{},
		Synsets:  []*lmf.Synset{},
	}
	res := &lmf.Resource{
		LMFVersion: lmf.DefaultVersion,
		Lexicons:   []*lmf.Lexicon{lex},
	}
	return newEditor(res, lex, opts), nil
}

// FromResource creates an editor over an already-loaded resource. The first
// lexicon becomes the active one; non-empty Options fields override the
// loaded metadata. Every loaded record is routed through the same indexes
// the mutation operations maintain.
func FromResource(res *lmf.Resource, opts Options) (*Editor, error) {
	if len(res.Lexicons) == 0 {
		return nil, &InvalidShapeError{Field: "resource", Reason: "contains no lexicons"}
	}
	lex := res.Lexicons[0]
	if lex.Entries == nil {
		lex.Entries = []*lmf.Entry{}
	}
	if lex.Synsets == nil {
		lex.Synsets = []*lmf.Synset{}
	}
	negotiate(lex, opts)
	return newEditor(res, lex, opts), nil
}

// LoadFromFile creates an editor from a WN-LMF file, sharing the
// construction path used by the store loader's fallback.
func LoadFromFile(path string, opts Options) (*Editor, error) {
	res, err := lmf.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return FromResource(res, opts)
}

func newEditor(res *lmf.Resource, lex *lmf.Lexicon, opts Options) *Editor {
	e := &Editor{
		res:         res,
		lex:         lex,
		idx:         newIndex(),
		synsetVocab: opts.SynsetRelationVocab,
		senseVocab:  opts.SenseRelationVocab,
		lmfRead:     orDefault(res.LMFVersion, lmf.DefaultVersion),
		lmfWrite:    opts.LMFVersion,
	}
	if e.synsetVocab == nil {
		e.synsetVocab = vocab.SynsetRelations
	}
	if e.senseVocab == nil {
		e.senseVocab = vocab.SenseRelations
	}
	e.idx.rebuild(lex)
	return e
}

// negotiate applies caller overrides on top of loaded metadata, field by
// field.
func negotiate(lex *lmf.Lexicon, opts Options) {
	if opts.ID != "" {
		lex.ID = opts.ID
	}
	if opts.Label != "" {
		lex.Label = opts.Label
	}
	if opts.Language != "" {
		lex.Language = opts.Language
	}
	if opts.Email != "" {
		lex.Email = opts.Email
	}
	if opts.License != "" {
		lex.License = opts.License
	}
	if opts.Version != "" {
		lex.Version = opts.Version
	}
	if opts.URL != "" {
		lex.URL = opts.URL
	}
	if opts.Citation != "" {
		lex.Citation = opts.Citation
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Resource returns the underlying resource. Mutating it directly bypasses
// the indexes; use the editor operations instead.
func (e *Editor) Resource() *lmf.Resource { return e.res }

// Lexicon returns the active lexicon.
func (e *Editor) Lexicon() *lmf.Lexicon { return e.lex }

// newID builds a lexicon-scoped id: <lexicon>-<prefix>-<8 hex>[-<suffix>].
func (e *Editor) newID(prefix, suffix string) string {
	u := uuid.New()
	parts := []string{e.lex.ID, prefix, hex.EncodeToString(u[:])[:8]}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, "-")
}

// Metadata is the identity and provenance of the active lexicon.
type Metadata struct {
	ID       string
	Label    string
	Language string
	Email    string
	License  string
	Version  string
	URL      string
	Citation string
}

// Metadata returns the active lexicon's metadata.
func (e *Editor) Metadata() Metadata {
	return Metadata{
		ID:       e.lex.ID,
		Label:    e.lex.Label,
		Language: e.lex.Language,
		Email:    e.lex.Email,
		License:  e.lex.License,
		Version:  e.lex.Version,
		URL:      e.lex.URL,
		Citation: e.lex.Citation,
	}
}

// SetID renames the lexicon. Downstream consumers must treat the result as
// a new logical identity; ids of existing records keep their old prefix.
func (e *Editor) SetID(id string) { e.lex.ID = id }

// SetLabel sets the human-readable label.
func (e *Editor) SetLabel(label string) { e.lex.Label = label }

// SetVersion sets the lexicon version string.
func (e *Editor) SetVersion(version string) { e.lex.Version = version }

// SetEmail sets the contact email.
func (e *Editor) SetEmail(email string) { e.lex.Email = email }

// SetLicense sets the license URL.
func (e *Editor) SetLicense(license string) { e.lex.License = license }

// SetURL sets the lexicon URL.
func (e *Editor) SetURL(url string) { e.lex.URL = url }

// SetCitation sets the citation text.
func (e *Editor) SetCitation(citation string) { e.lex.Citation = citation }

// UpdateMetadata applies every non-empty field of m to the lexicon.
func (e *Editor) UpdateMetadata(m Metadata) {
	negotiate(e.lex, Options{
		ID:       m.ID,
		Label:    m.Label,
		Language: m.Language,
		Email:    m.Email,
		License:  m.License,
		Version:  m.Version,
		URL:      m.URL,
		Citation: m.Citation,
	})
}

// SetLMFVersion sets the schema version used for export, independent of
// the version the source was read with.
func (e *Editor) SetLMFVersion(version string) { e.lmfWrite = version }

// LMFVersion returns the schema version exports will use.
func (e *Editor) LMFVersion() string {
	if e.lmfWrite != "" {
		return e.lmfWrite
	}
	return e.lmfRead
}

// Stats are record counts for the active lexicon.
type Stats struct {
	Synsets int
	Entries int
	Senses  int
}

// Stats returns record counts for the active lexicon.
func (e *Editor) Stats() Stats {
	st := Stats{
		Synsets: len(e.lex.Synsets),
		Entries: len(e.lex.Entries),
	}
	for _, entry := range e.lex.Entries {
		st.Senses += len(entry.Senses)
	}
	return st
}

// Export writes the resource as a WN-LMF document using the negotiated
// write version.
func (e *Editor) Export(w io.Writer) error {
	out := *e.res
	out.LMFVersion = e.LMFVersion()
	return lmf.Dump(w, &out)
}

// ExportFile writes the resource as a WN-LMF document to path.
func (e *Editor) ExportFile(path string) error {
	out := *e.res
	out.LMFVersion = e.LMFVersion()
	return lmf.DumpFile(path, &out)
}

// Snapshot returns a deep copy of the resource carrying the negotiated
// write version, suitable for handing to a commit sink.
func (e *Editor) Snapshot() *lmf.Resource {
	out := lmf.Clone(e.res)
	out.LMFVersion = e.LMFVersion()
	return out
}
