package store

import (
	"database/sql"
	"fmt"

	"github.com/bond-lab/wn-edit/pkg/lmf"
)

// loadFast reconstructs a lexicon in a fixed number of bulk queries against
// the physical schema. It verifies its schema assumptions first and reports
// a SchemaError when they do not hold; driver failures surface as
// StoreError. Either way the partially built resource is discarded — only a
// complete one is returned.
func (s *Store) loadFast(lexiconID string) (*lmf.Resource, error) {
	if err := s.checkSchema(); err != nil {
		return nil, err
	}

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

	entryByPK := make(map[int64]*lmf.Entry)
	if err := s.bulkEntries(lexiconID, lex, entryByPK); err != nil {
		return nil, err
	}
	senseByPK := make(map[int64]*lmf.Sense)
	if err := s.bulkSenses(lexiconID, entryByPK, senseByPK); err != nil {
		return nil, err
	}
	if err := s.bulkForms(lexiconID, entryByPK); err != nil {
		return nil, err
	}
	if err := s.bulkSenseChildren(lexiconID, senseByPK); err != nil {
		return nil, err
	}

	synsetByPK := make(map[int64]*lmf.Synset)
	if err := s.bulkSynsets(lexiconID, lex, synsetByPK); err != nil {
		return nil, err
	}
	if err := s.bulkSynsetChildren(lexiconID, synsetByPK); err != nil {
		return nil, err
	}

	return &lmf.Resource{
		LMFVersion: info.LMFVersion,
		Lexicons:   []*lmf.Lexicon{lex},
	}, nil
}

// checkSchema probes the assumptions the bulk queries are written against.
func (s *Store) checkSchema() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return &StoreError{Op: "read user_version", Err: err}
	}
	if version != schemaVersion {
		return &SchemaError{Detail: fmt.Sprintf("user_version %d, expected %d", version, schemaVersion)}
	}
	for _, table := range requiredTables {
		var name string
		err := s.db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).
			Scan(&name)
		if err == sql.ErrNoRows {
			return &SchemaError{Detail: "missing table " + table}
		}
		if err != nil {
			return &StoreError{Op: "probe table " + table, Err: err}
		}
	}
	return nil
}

func (s *Store) bulkEntries(lexiconID string, lex *lmf.Lexicon, entryByPK map[int64]*lmf.Entry) error {
	rows, err := s.db.Query(
		`SELECT pk, id, lemma, pos, script FROM entries WHERE lexicon_id = ? ORDER BY ord`,
		lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk entries", Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var pk int64
		e := &lmf.Entry{Senses: []*lmf.Sense{}}
		if err := rows.Scan(&pk, &e.ID, &e.Lemma.WrittenForm, &e.Lemma.PartOfSpeech, &e.Lemma.Script); err != nil {
			return &StoreError{Op: "bulk entries", Err: err}
		}
		lex.Entries = append(lex.Entries, e)
		entryByPK[pk] = e
	}
	return wrapRows(rows, "bulk entries")
}

func (s *Store) bulkForms(lexiconID string, entryByPK map[int64]*lmf.Entry) error {
	rows, err := s.db.Query(
		`SELECT f.entry_pk, f.written_form, f.script
		 FROM forms f JOIN entries e ON e.pk = f.entry_pk
		 WHERE e.lexicon_id = ? ORDER BY f.entry_pk, f.ord`, lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk forms", Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var pk int64
		var f lmf.Form
		if err := rows.Scan(&pk, &f.WrittenForm, &f.Script); err != nil {
			return &StoreError{Op: "bulk forms", Err: err}
		}
		entry, ok := entryByPK[pk]
		if !ok {
			return fmt.Errorf("form references unknown entry pk %d", pk)
		}
		entry.Forms = append(entry.Forms, &f)
	}
	return wrapRows(rows, "bulk forms")
}

func (s *Store) bulkSenses(lexiconID string, entryByPK map[int64]*lmf.Entry, senseByPK map[int64]*lmf.Sense) error {
	rows, err := s.db.Query(
		`SELECT sn.pk, sn.entry_pk, sn.id, sn.synset_id, sn.adjposition
		 FROM senses sn JOIN entries e ON e.pk = sn.entry_pk
		 WHERE e.lexicon_id = ? ORDER BY sn.entry_pk, sn.ord`, lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk senses", Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var pk, entryPK int64
		sn := &lmf.Sense{}
		if err := rows.Scan(&pk, &entryPK, &sn.ID, &sn.Synset, &sn.Adjposition); err != nil {
			return &StoreError{Op: "bulk senses", Err: err}
		}
		entry, ok := entryByPK[entryPK]
		if !ok {
			return fmt.Errorf("sense %s references unknown entry pk %d", sn.ID, entryPK)
		}
		entry.Senses = append(entry.Senses, sn)
		senseByPK[pk] = sn
	}
	return wrapRows(rows, "bulk senses")
}

func (s *Store) bulkSenseChildren(lexiconID string, senseByPK map[int64]*lmf.Sense) error {
	relRows, err := s.db.Query(
		`SELECT r.sense_pk, r.rel_type, r.target, r.confidence
		 FROM sense_relations r
		 JOIN senses sn ON sn.pk = r.sense_pk
		 JOIN entries e ON e.pk = sn.entry_pk
		 WHERE e.lexicon_id = ? ORDER BY r.sense_pk, r.ord`, lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk sense relations", Err: err}
	}
	defer relRows.Close()
	for relRows.Next() {
		var pk int64
		var r lmf.Relation
		if err := relRows.Scan(&pk, &r.Type, &r.Target, &r.Confidence); err != nil {
			return &StoreError{Op: "bulk sense relations", Err: err}
		}
		sn, ok := senseByPK[pk]
		if !ok {
			return fmt.Errorf("relation references unknown sense pk %d", pk)
		}
		sn.Relations = append(sn.Relations, &r)
	}
	if err := wrapRows(relRows, "bulk sense relations"); err != nil {
		return err
	}

	exRows, err := s.db.Query(
		`SELECT x.sense_pk, x.text, x.language
		 FROM sense_examples x
		 JOIN senses sn ON sn.pk = x.sense_pk
		 JOIN entries e ON e.pk = sn.entry_pk
		 WHERE e.lexicon_id = ? ORDER BY x.sense_pk, x.ord`, lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk sense examples", Err: err}
	}
	defer exRows.Close()
	for exRows.Next() {
		var pk int64
		var ex lmf.Example
		if err := exRows.Scan(&pk, &ex.Text, &ex.Language); err != nil {
			return &StoreError{Op: "bulk sense examples", Err: err}
		}
		sn, ok := senseByPK[pk]
		if !ok {
			return fmt.Errorf("example references unknown sense pk %d", pk)
		}
		sn.Examples = append(sn.Examples, &ex)
	}
	if err := wrapRows(exRows, "bulk sense examples"); err != nil {
		return err
	}

	countRows, err := s.db.Query(
		`SELECT c.sense_pk, c.value
		 FROM sense_counts c
		 JOIN senses sn ON sn.pk = c.sense_pk
		 JOIN entries e ON e.pk = sn.entry_pk
		 WHERE e.lexicon_id = ? ORDER BY c.sense_pk, c.ord`, lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk sense counts", Err: err}
	}
	defer countRows.Close()
	for countRows.Next() {
		var pk int64
		var c lmf.Count
		if err := countRows.Scan(&pk, &c.Value); err != nil {
			return &StoreError{Op: "bulk sense counts", Err: err}
		}
		sn, ok := senseByPK[pk]
		if !ok {
			return fmt.Errorf("count references unknown sense pk %d", pk)
		}
		sn.Counts = append(sn.Counts, &c)
	}
	return wrapRows(countRows, "bulk sense counts")
}

func (s *Store) bulkSynsets(lexiconID string, lex *lmf.Lexicon, synsetByPK map[int64]*lmf.Synset) error {
	rows, err := s.db.Query(
		`SELECT pk, id, pos, ili FROM synsets WHERE lexicon_id = ? ORDER BY ord`,
		lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk synsets", Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var pk int64
		ss := &lmf.Synset{}
		if err := rows.Scan(&pk, &ss.ID, &ss.PartOfSpeech, &ss.ILI); err != nil {
			return &StoreError{Op: "bulk synsets", Err: err}
		}
		lex.Synsets = append(lex.Synsets, ss)
		synsetByPK[pk] = ss
	}
	return wrapRows(rows, "bulk synsets")
}

func (s *Store) bulkSynsetChildren(lexiconID string, synsetByPK map[int64]*lmf.Synset) error {
	defRows, err := s.db.Query(
		`SELECT d.synset_pk, d.text, d.language
		 FROM definitions d JOIN synsets ss ON ss.pk = d.synset_pk
		 WHERE ss.lexicon_id = ? ORDER BY d.synset_pk, d.ord`, lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk definitions", Err: err}
	}
	defer defRows.Close()
	for defRows.Next() {
		var pk int64
		var d lmf.Definition
		if err := defRows.Scan(&pk, &d.Text, &d.Language); err != nil {
			return &StoreError{Op: "bulk definitions", Err: err}
		}
		ss, ok := synsetByPK[pk]
		if !ok {
			return fmt.Errorf("definition references unknown synset pk %d", pk)
		}
		ss.Definitions = append(ss.Definitions, &d)
	}
	if err := wrapRows(defRows, "bulk definitions"); err != nil {
		return err
	}

	relRows, err := s.db.Query(
		`SELECT r.synset_pk, r.rel_type, r.target, r.confidence
		 FROM synset_relations r JOIN synsets ss ON ss.pk = r.synset_pk
		 WHERE ss.lexicon_id = ? ORDER BY r.synset_pk, r.ord`, lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk synset relations", Err: err}
	}
	defer relRows.Close()
	for relRows.Next() {
		var pk int64
		var r lmf.Relation
		if err := relRows.Scan(&pk, &r.Type, &r.Target, &r.Confidence); err != nil {
			return &StoreError{Op: "bulk synset relations", Err: err}
		}
		ss, ok := synsetByPK[pk]
		if !ok {
			return fmt.Errorf("relation references unknown synset pk %d", pk)
		}
		ss.Relations = append(ss.Relations, &r)
	}
	if err := wrapRows(relRows, "bulk synset relations"); err != nil {
		return err
	}

	exRows, err := s.db.Query(
		`SELECT x.synset_pk, x.text, x.language
		 FROM synset_examples x JOIN synsets ss ON ss.pk = x.synset_pk
		 WHERE ss.lexicon_id = ? ORDER BY x.synset_pk, x.ord`, lexiconID)
	if err != nil {
		return &StoreError{Op: "bulk synset examples", Err: err}
	}
	defer exRows.Close()
	for exRows.Next() {
		var pk int64
		var ex lmf.Example
		if err := exRows.Scan(&pk, &ex.Text, &ex.Language); err != nil {
			return &StoreError{Op: "bulk synset examples", Err: err}
		}
		ss, ok := synsetByPK[pk]
		if !ok {
			return fmt.Errorf("example references unknown synset pk %d", pk)
		}
		ss.Examples = append(ss.Examples, &ex)
	}
	return wrapRows(exRows, "bulk synset examples")
}

func wrapRows(rows interface{ Err() error }, op string) error {
	if err := rows.Err(); err != nil {
		return &StoreError{Op: op, Err: err}
	}
	return nil
}
