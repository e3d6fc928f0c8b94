package store

import (
	"database/sql"
	"fmt"
	"io"

	"github.com/bond-lab/wn-edit/pkg/lmf"
)

// The export interface reads one record at a time through the public
// accessors below. It is slower than the bulk path but depends only on
// the accessors' contracts, which makes it the ground truth the fast
// loader is tested against.

// LexiconInfo is the stored metadata of one lexicon.
type LexiconInfo struct {
	ID, Label, Language, Email, License, Version, URL, Citation string
	LMFVersion                                                  string
}

// Lexicon returns the stored metadata for the lexicon with the given id.
func (s *Store) Lexicon(id string) (*LexiconInfo, error) {
	var info LexiconInfo
	err := s.db.QueryRow(
		`SELECT id, label, language, email, license, version, url, citation, lmf_version
		 FROM lexicons WHERE id = ?`, id).
		Scan(&info.ID, &info.Label, &info.Language, &info.Email, &info.License,
			&info.Version, &info.URL, &info.Citation, &info.LMFVersion)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lexicon %s not found", id)
	}
	if err != nil {
		return nil, &StoreError{Op: "read lexicon " + id, Err: err}
	}
	return &info, nil
}

// EntryIDs returns the ids of the lexicon's entries in document order.
func (s *Store) EntryIDs(lexiconID string) ([]string, error) {
	return s.idColumn(
		`SELECT id FROM entries WHERE lexicon_id = ? ORDER BY ord`, lexiconID)
}

// SynsetIDs returns the ids of the lexicon's synsets in document order.
func (s *Store) SynsetIDs(lexiconID string) ([]string, error) {
	return s.idColumn(
		`SELECT id FROM synsets WHERE lexicon_id = ? ORDER BY ord`, lexiconID)
}

func (s *Store) idColumn(query, lexiconID string) ([]string, error) {
	rows, err := s.db.Query(query, lexiconID)
	if err != nil {
		return nil, &StoreError{Op: "list ids", Err: err}
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, &StoreError{Op: "list ids", Err: err}
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Entry reconstructs one entry with its forms and senses.
func (s *Store) Entry(lexiconID, id string) (*lmf.Entry, error) {
	entry := &lmf.Entry{ID: id, Senses: []*lmf.Sense{}}
	var pk int64
	err := s.db.QueryRow(
		`SELECT pk, lemma, pos, script FROM entries WHERE lexicon_id = ? AND id = ?`,
		lexiconID, id).
		Scan(&pk, &entry.Lemma.WrittenForm, &entry.Lemma.PartOfSpeech, &entry.Lemma.Script)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("entry %s not found in %s", id, lexiconID)
	}
	if err != nil {
		return nil, &StoreError{Op: "read entry " + id, Err: err}
	}

	rows, err := s.db.Query(
		`SELECT written_form, script FROM forms WHERE entry_pk = ? ORDER BY ord`, pk)
	if err != nil {
		return nil, &StoreError{Op: "read forms of " + id, Err: err}
	}
	for rows.Next() {
		var f lmf.Form
		if err := rows.Scan(&f.WrittenForm, &f.Script); err != nil {
			rows.Close()
			return nil, &StoreError{Op: "read forms of " + id, Err: err}
		}
		entry.Forms = append(entry.Forms, &f)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "read forms of " + id, Err: err}
	}

	senseRows, err := s.db.Query(
		`SELECT pk, id, synset_id, adjposition FROM senses WHERE entry_pk = ? ORDER BY ord`, pk)
	if err != nil {
		return nil, &StoreError{Op: "read senses of " + id, Err: err}
	}
	type senseRow struct {
		pk    int64
		sense *lmf.Sense
	}
	var senseRowList []senseRow
	for senseRows.Next() {
		var sr senseRow
		sr.sense = &lmf.Sense{}
		if err := senseRows.Scan(&sr.pk, &sr.sense.ID, &sr.sense.Synset, &sr.sense.Adjposition); err != nil {
			senseRows.Close()
			return nil, &StoreError{Op: "read senses of " + id, Err: err}
		}
		senseRowList = append(senseRowList, sr)
	}
	senseRows.Close()
	if err := senseRows.Err(); err != nil {
		return nil, &StoreError{Op: "read senses of " + id, Err: err}
	}

	for _, sr := range senseRowList {
		if err := s.fillSense(sr.pk, sr.sense); err != nil {
			return nil, err
		}
		entry.Senses = append(entry.Senses, sr.sense)
	}
	return entry, nil
}

func (s *Store) fillSense(pk int64, sense *lmf.Sense) error {
	rows, err := s.db.Query(
		`SELECT rel_type, target, confidence FROM sense_relations WHERE sense_pk = ? ORDER BY ord`, pk)
	if err != nil {
		return &StoreError{Op: "read relations of " + sense.ID, Err: err}
	}
	for rows.Next() {
		var r lmf.Relation
		if err := rows.Scan(&r.Type, &r.Target, &r.Confidence); err != nil {
			rows.Close()
			return &StoreError{Op: "read relations of " + sense.ID, Err: err}
		}
		sense.Relations = append(sense.Relations, &r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return &StoreError{Op: "read relations of " + sense.ID, Err: err}
	}

	exRows, err := s.db.Query(
		`SELECT text, language FROM sense_examples WHERE sense_pk = ? ORDER BY ord`, pk)
	if err != nil {
		return &StoreError{Op: "read examples of " + sense.ID, Err: err}
	}
	for exRows.Next() {
		var ex lmf.Example
		if err := exRows.Scan(&ex.Text, &ex.Language); err != nil {
			exRows.Close()
			return &StoreError{Op: "read examples of " + sense.ID, Err: err}
		}
		sense.Examples = append(sense.Examples, &ex)
	}
	exRows.Close()
	if err := exRows.Err(); err != nil {
		return &StoreError{Op: "read examples of " + sense.ID, Err: err}
	}

	countRows, err := s.db.Query(
		`SELECT value FROM sense_counts WHERE sense_pk = ? ORDER BY ord`, pk)
	if err != nil {
		return &StoreError{Op: "read counts of " + sense.ID, Err: err}
	}
	for countRows.Next() {
		var c lmf.Count
		if err := countRows.Scan(&c.Value); err != nil {
			countRows.Close()
			return &StoreError{Op: "read counts of " + sense.ID, Err: err}
		}
		sense.Counts = append(sense.Counts, &c)
	}
	countRows.Close()
	return countRows.Err()
}

// Synset reconstructs one synset with its definitions, relations and
// examples.
func (s *Store) Synset(lexiconID, id string) (*lmf.Synset, error) {
	ss := &lmf.Synset{ID: id}
	var pk int64
	err := s.db.QueryRow(
		`SELECT pk, pos, ili FROM synsets WHERE lexicon_id = ? AND id = ?`,
		lexiconID, id).
		Scan(&pk, &ss.PartOfSpeech, &ss.ILI)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("synset %s not found in %s", id, lexiconID)
	}
	if err != nil {
		return nil, &StoreError{Op: "read synset " + id, Err: err}
	}

	defRows, err := s.db.Query(
		`SELECT text, language FROM definitions WHERE synset_pk = ? ORDER BY ord`, pk)
	if err != nil {
		return nil, &StoreError{Op: "read definitions of " + id, Err: err}
	}
	for defRows.Next() {
		var d lmf.Definition
		if err := defRows.Scan(&d.Text, &d.Language); err != nil {
			defRows.Close()
			return nil, &StoreError{Op: "read definitions of " + id, Err: err}
		}
		ss.Definitions = append(ss.Definitions, &d)
	}
	defRows.Close()
	if err := defRows.Err(); err != nil {
		return nil, &StoreError{Op: "read definitions of " + id, Err: err}
	}

	relRows, err := s.db.Query(
		`SELECT rel_type, target, confidence FROM synset_relations WHERE synset_pk = ? ORDER BY ord`, pk)
	if err != nil {
		return nil, &StoreError{Op: "read relations of " + id, Err: err}
	}
	for relRows.Next() {
		var r lmf.Relation
		if err := relRows.Scan(&r.Type, &r.Target, &r.Confidence); err != nil {
			relRows.Close()
			return nil, &StoreError{Op: "read relations of " + id, Err: err}
		}
		ss.Relations = append(ss.Relations, &r)
	}
	relRows.Close()
	if err := relRows.Err(); err != nil {
		return nil, &StoreError{Op: "read relations of " + id, Err: err}
	}

	exRows, err := s.db.Query(
		`SELECT text, language FROM synset_examples WHERE synset_pk = ? ORDER BY ord`, pk)
	if err != nil {
		return nil, &StoreError{Op: "read examples of " + id, Err: err}
	}
	for exRows.Next() {
		var ex lmf.Example
		if err := exRows.Scan(&ex.Text, &ex.Language); err != nil {
			exRows.Close()
			return nil, &StoreError{Op: "read examples of " + id, Err: err}
		}
		ss.Examples = append(ss.Examples, &ex)
	}
	exRows.Close()
	return ss, exRows.Err()
}

// BuildResource reconstructs a full resource for one lexicon through the
// per-record accessors.
func (s *Store) BuildResource(lexiconID string) (*lmf.Resource, error) {
	info, err := s.Lexicon(lexiconID)
	if err != nil {
		return nil, err
	}
	lex := &lmf.Lexicon{
		ID:       info.ID,
		Label:    info.Label,
		Language: info.Language,
		Email:    info.Email,
		License:  info.License,
		Version:  info.Version,
		URL:      info.URL,
		Citation: info.Citation,
		Entries:  []*lmf.Entry{},
		Synsets:  []*lmf.Synset{},
	}

	entryIDs, err := s.EntryIDs(lexiconID)
	if err != nil {
		return nil, err
	}
	for _, id := range entryIDs {
		entry, err := s.Entry(lexiconID, id)
		if err != nil {
			return nil, err
		}
		lex.Entries = append(lex.Entries, entry)
	}

	synsetIDs, err := s.SynsetIDs(lexiconID)
	if err != nil {
		return nil, err
	}
	for _, id := range synsetIDs {
		ss, err := s.Synset(lexiconID, id)
		if err != nil {
			return nil, err
		}
		lex.Synsets = append(lex.Synsets, ss)
	}

	return &lmf.Resource{
		LMFVersion: info.LMFVersion,
		Lexicons:   []*lmf.Lexicon{lex},
	}, nil
}

// ExportLexicon writes the stored lexicon as a WN-LMF document to w.
func (s *Store) ExportLexicon(w io.Writer, lexiconID string) error {
	res, err := s.BuildResource(lexiconID)
	if err != nil {
		return err
	}
	return lmf.Dump(w, res)
}
