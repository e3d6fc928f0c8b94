package store

import (
	"database/sql"
	"fmt"

	"github.com/bond-lab/wn-edit/pkg/lmf"
)

// Commit merges a resource snapshot into the store. Each lexicon in the
// snapshot replaces any stored lexicon with the same id. The snapshot must
// already satisfy the model invariants; Commit stores what it is given and
// rejects nothing except database failures. The whole merge is one
// transaction.
func (s *Store) Commit(res *lmf.Resource) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &StoreError{Op: "begin commit", Err: err}
	}
	defer tx.Rollback()

	for _, lex := range res.Lexicons {
		if err := commitLexicon(tx, res.LMFVersion, lex); err != nil {
			return err
		}
		s.log.Debug("committed lexicon",
			"lexicon", lex.ID,
			"entries", len(lex.Entries),
			"synsets", len(lex.Synsets))
	}

	if err := tx.Commit(); err != nil {
		return &StoreError{Op: "commit", Err: err}
	}
	return nil
}

func commitLexicon(tx *sql.Tx, lmfVersion string, lex *lmf.Lexicon) error {
	// Replace semantics: the old rows cascade away with the lexicon.
	if _, err := tx.Exec(`DELETE FROM lexicons WHERE id = ?`, lex.ID); err != nil {
		return &StoreError{Op: "clear lexicon " + lex.ID, Err: err}
	}

	if lmfVersion == "" {
		lmfVersion = lmf.DefaultVersion
	}
	_, err := tx.Exec(
		`INSERT INTO lexicons (id, label, language, email, license, version, url, citation, lmf_version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lex.ID, lex.Label, lex.Language, lex.Email, lex.License,
		lex.Version, lex.URL, lex.Citation, lmfVersion)
	if err != nil {
		return &StoreError{Op: "insert lexicon " + lex.ID, Err: err}
	}

	if err := commitEntries(tx, lex); err != nil {
		return err
	}
	return commitSynsets(tx, lex)
}

func commitEntries(tx *sql.Tx, lex *lmf.Lexicon) error {
	insEntry, err := tx.Prepare(
		`INSERT INTO entries (lexicon_id, id, lemma, pos, script, ord) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare entries", Err: err}
	}
	defer insEntry.Close()
	insForm, err := tx.Prepare(
		`INSERT INTO forms (entry_pk, written_form, script, ord) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare forms", Err: err}
	}
	defer insForm.Close()
	insSense, err := tx.Prepare(
		`INSERT INTO senses (entry_pk, id, synset_id, adjposition, ord) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare senses", Err: err}
	}
	defer insSense.Close()
	insRel, err := tx.Prepare(
		`INSERT INTO sense_relations (sense_pk, rel_type, target, confidence, ord) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare sense relations", Err: err}
	}
	defer insRel.Close()
	insEx, err := tx.Prepare(
		`INSERT INTO sense_examples (sense_pk, text, language, ord) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare sense examples", Err: err}
	}
	defer insEx.Close()
	insCount, err := tx.Prepare(
		`INSERT INTO sense_counts (sense_pk, value, ord) VALUES (?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare sense counts", Err: err}
	}
	defer insCount.Close()

	for i, e := range lex.Entries {
		res, err := insEntry.Exec(lex.ID, e.ID, e.Lemma.WrittenForm, e.Lemma.PartOfSpeech, e.Lemma.Script, i)
		if err != nil {
			return &StoreError{Op: fmt.Sprintf("insert entry %s", e.ID), Err: err}
		}
		entryPK, err := res.LastInsertId()
		if err != nil {
			return &StoreError{Op: "entry pk", Err: err}
		}
		for j, f := range e.Forms {
			if _, err := insForm.Exec(entryPK, f.WrittenForm, f.Script, j); err != nil {
				return &StoreError{Op: fmt.Sprintf("insert form of %s", e.ID), Err: err}
			}
		}
		for j, sn := range e.Senses {
			res, err := insSense.Exec(entryPK, sn.ID, sn.Synset, sn.Adjposition, j)
			if err != nil {
				return &StoreError{Op: fmt.Sprintf("insert sense %s", sn.ID), Err: err}
			}
			sensePK, err := res.LastInsertId()
			if err != nil {
				return &StoreError{Op: "sense pk", Err: err}
			}
			for k, r := range sn.Relations {
				if _, err := insRel.Exec(sensePK, r.Type, r.Target, r.Confidence, k); err != nil {
					return &StoreError{Op: fmt.Sprintf("insert relation of %s", sn.ID), Err: err}
				}
			}
			for k, ex := range sn.Examples {
				if _, err := insEx.Exec(sensePK, ex.Text, ex.Language, k); err != nil {
					return &StoreError{Op: fmt.Sprintf("insert example of %s", sn.ID), Err: err}
				}
			}
			for k, c := range sn.Counts {
				if _, err := insCount.Exec(sensePK, c.Value, k); err != nil {
					return &StoreError{Op: fmt.Sprintf("insert count of %s", sn.ID), Err: err}
				}
			}
		}
	}
	return nil
}

func commitSynsets(tx *sql.Tx, lex *lmf.Lexicon) error {
	insSynset, err := tx.Prepare(
		`INSERT INTO synsets (lexicon_id, id, pos, ili, ord) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare synsets", Err: err}
	}
	defer insSynset.Close()
	insDef, err := tx.Prepare(
		`INSERT INTO definitions (synset_pk, text, language, ord) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare definitions", Err: err}
	}
	defer insDef.Close()
	insEx, err := tx.Prepare(
		`INSERT INTO synset_examples (synset_pk, text, language, ord) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare synset examples", Err: err}
	}
	defer insEx.Close()
	insRel, err := tx.Prepare(
		`INSERT INTO synset_relations (synset_pk, rel_type, target, confidence, ord) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "prepare synset relations", Err: err}
	}
	defer insRel.Close()

	for i, ss := range lex.Synsets {
		res, err := insSynset.Exec(lex.ID, ss.ID, ss.PartOfSpeech, ss.ILI, i)
		if err != nil {
			return &StoreError{Op: fmt.Sprintf("insert synset %s", ss.ID), Err: err}
		}
		synsetPK, err := res.LastInsertId()
		if err != nil {
			return &StoreError{Op: "synset pk", Err: err}
		}
		for j, d := range ss.Definitions {
			if _, err := insDef.Exec(synsetPK, d.Text, d.Language, j); err != nil {
				return &StoreError{Op: fmt.Sprintf("insert definition of %s", ss.ID), Err: err}
			}
		}
		for j, r := range ss.Relations {
			if _, err := insRel.Exec(synsetPK, r.Type, r.Target, r.Confidence, j); err != nil {
				return &StoreError{Op: fmt.Sprintf("insert relation of %s", ss.ID), Err: err}
			}
		}
		for j, ex := range ss.Examples {
			if _, err := insEx.Exec(synsetPK, ex.Text, ex.Language, j); err != nil {
				return &StoreError{Op: fmt.Sprintf("insert example of %s", ss.ID), Err: err}
			}
		}
	}
	return nil
}
