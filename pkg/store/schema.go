package store

// schemaVersion is stamped into PRAGMA user_version. The fast load path
// refuses to run against any other version and hands control to the
// export fallback instead.
const schemaVersion = 1

// Records keep their document order in the ord columns; every read that
// reconstructs a lexicon must order by them so the exchange format round
// trips byte-for-byte.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS lexicons (
	id TEXT PRIMARY KEY,
	label TEXT NOT NULL,
	language TEXT NOT NULL,
	email TEXT NOT NULL,
	license TEXT NOT NULL,
	version TEXT NOT NULL,
	url TEXT NOT NULL DEFAULT '',
	citation TEXT NOT NULL DEFAULT '',
	lmf_version TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	pk INTEGER PRIMARY KEY,
	lexicon_id TEXT NOT NULL REFERENCES lexicons(id) ON DELETE CASCADE,
	id TEXT NOT NULL,
	lemma TEXT NOT NULL,
	pos TEXT NOT NULL,
	script TEXT NOT NULL DEFAULT '',
	ord INTEGER NOT NULL,
	UNIQUE(lexicon_id, id)
);

CREATE TABLE IF NOT EXISTS forms (
	entry_pk INTEGER NOT NULL REFERENCES entries(pk) ON DELETE CASCADE,
	written_form TEXT NOT NULL,
	script TEXT NOT NULL DEFAULT '',
	ord INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS senses (
	pk INTEGER PRIMARY KEY,
	entry_pk INTEGER NOT NULL REFERENCES entries(pk) ON DELETE CASCADE,
	id TEXT NOT NULL,
	synset_id TEXT NOT NULL,
	adjposition TEXT NOT NULL DEFAULT '',
	ord INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sense_relations (
	sense_pk INTEGER NOT NULL REFERENCES senses(pk) ON DELETE CASCADE,
	rel_type TEXT NOT NULL,
	target TEXT NOT NULL,
	confidence TEXT NOT NULL DEFAULT '',
	ord INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sense_examples (
	sense_pk INTEGER NOT NULL REFERENCES senses(pk) ON DELETE CASCADE,
	text TEXT NOT NULL,
	language TEXT NOT NULL DEFAULT '',
	ord INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sense_counts (
	sense_pk INTEGER NOT NULL REFERENCES senses(pk) ON DELETE CASCADE,
	value INTEGER NOT NULL,
	ord INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS synsets (
	pk INTEGER PRIMARY KEY,
	lexicon_id TEXT NOT NULL REFERENCES lexicons(id) ON DELETE CASCADE,
	id TEXT NOT NULL,
	pos TEXT NOT NULL,
	ili TEXT NOT NULL DEFAULT '',
	ord INTEGER NOT NULL,
	UNIQUE(lexicon_id, id)
);

CREATE TABLE IF NOT EXISTS definitions (
	synset_pk INTEGER NOT NULL REFERENCES synsets(pk) ON DELETE CASCADE,
	text TEXT NOT NULL,
	language TEXT NOT NULL DEFAULT '',
	ord INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS synset_examples (
	synset_pk INTEGER NOT NULL REFERENCES synsets(pk) ON DELETE CASCADE,
	text TEXT NOT NULL,
	language TEXT NOT NULL DEFAULT '',
	ord INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS synset_relations (
	synset_pk INTEGER NOT NULL REFERENCES synsets(pk) ON DELETE CASCADE,
	rel_type TEXT NOT NULL,
	target TEXT NOT NULL,
	confidence TEXT NOT NULL DEFAULT '',
	ord INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_lexicon ON entries(lexicon_id);
CREATE INDEX IF NOT EXISTS idx_senses_entry ON senses(entry_pk);
CREATE INDEX IF NOT EXISTS idx_synsets_lexicon ON synsets(lexicon_id)
`

// requiredTables is what the fast path probes for before trusting the
// physical schema.
var requiredTables = []string{
	"lexicons", "entries", "forms", "senses",
	"sense_relations", "sense_examples", "sense_counts",
	"synsets", "definitions", "synset_examples", "synset_relations",
}
