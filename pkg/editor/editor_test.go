package editor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bond-lab/wn-edit/pkg/lmf"
	"github.com/bond-lab/wn-edit/pkg/vocab"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	ed, err := New(Options{ID: "test-wn", Label: "Test WordNet"})
	require.NoError(t, err)
	return ed
}

// checkConsistent verifies that the lookup indexes agree exactly with the
// record model after a sequence of mutations.
func checkConsistent(t *testing.T, e *Editor) {
	t.Helper()

	senseCount := 0
	for _, entry := range e.lex.Entries {
		got, ok := e.idx.entryByID[entry.ID]
		require.True(t, ok, "entry %s missing from id index", entry.ID)
		assert.Same(t, entry, got)

		found := false
		for _, cand := range e.idx.entriesByLemma[entry.Lemma.WrittenForm] {
			if cand == entry {
				found = true
			}
		}
		assert.True(t, found, "entry %s missing from lemma index", entry.ID)

		for _, s := range entry.Senses {
			senseCount++
			gotSense, ok := e.idx.senseByID[s.ID]
			require.True(t, ok, "sense %s missing from id index", s.ID)
			assert.Same(t, s, gotSense)
			assert.Same(t, entry, e.idx.senseOwner[s.ID], "sense %s has wrong owner", s.ID)
		}
	}
	assert.Len(t, e.idx.entryByID, len(e.lex.Entries), "stale entries in id index")
	assert.Len(t, e.idx.senseByID, senseCount, "stale senses in id index")
	assert.Len(t, e.idx.senseOwner, senseCount, "stale owners in sense index")

	lemmaTotal := 0
	for _, entries := range e.idx.entriesByLemma {
		lemmaTotal += len(entries)
	}
	assert.Equal(t, len(e.lex.Entries), lemmaTotal, "stale entries in lemma index")

	for _, ss := range e.lex.Synsets {
		got, ok := e.idx.synsetByID[ss.ID]
		require.True(t, ok, "synset %s missing from id index", ss.ID)
		assert.Same(t, ss, got)
	}
	assert.Len(t, e.idx.synsetByID, len(e.lex.Synsets), "stale synsets in id index")
}

func TestNewRequiresID(t *testing.T) {
	_, err := New(Options{})
	var shapeErr *InvalidShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "lexicon id", shapeErr.Field)
}

func TestNewAppliesDefaults(t *testing.T) {
	ed, err := New(Options{ID: "my-wn"})
	require.NoError(t, err)

	meta := ed.Metadata()
	assert.Equal(t, "my-wn", meta.ID)
	assert.Equal(t, "my-wn", meta.Label)
	assert.Equal(t, DefaultLanguage, meta.Language)
	assert.Equal(t, DefaultEmail, meta.Email)
	assert.Equal(t, DefaultLicense, meta.License)
	assert.Equal(t, DefaultLexiconVersion, meta.Version)
	assert.Equal(t, lmf.DefaultVersion, ed.LMFVersion())
}

func TestCreateSynsetWithWords(t *testing.T) {
	ed := newTestEditor(t)

	ss, err := ed.CreateSynset(SynsetSpec{
		PartOfSpeech: "n",
		Definition:   "A living organism",
		Words:        []string{"animal", "creature"},
	})
	require.NoError(t, err)
	require.NotNil(t, ss)
	assert.True(t, strings.HasPrefix(ss.ID, "test-wn-synset-"))
	assert.True(t, strings.HasSuffix(ss.ID, "-n"))
	require.Len(t, ss.Definitions, 1)
	assert.Equal(t, "A living organism", ss.Definitions[0].Text)

	stats := ed.Stats()
	assert.Equal(t, 1, stats.Synsets)
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 2, stats.Senses)

	for _, lemma := range []string{"animal", "creature"} {
		matches := ed.FindEntries(lemma, "n")
		require.Len(t, matches, 1, "lemma %s", lemma)
		require.Len(t, matches[0].Senses, 1)
		assert.Equal(t, ss.ID, matches[0].Senses[0].Synset)
	}
	checkConsistent(t, ed)
}

func TestCreateSynsetRejectsBadInput(t *testing.T) {
	ed := newTestEditor(t)

	_, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "q"})
	var shapeErr *InvalidShapeError
	require.ErrorAs(t, err, &shapeErr)

	_, err = ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog", "  "}})
	require.ErrorAs(t, err, &shapeErr)
	// Up-front validation: nothing was created.
	assert.Equal(t, Stats{}, ed.Stats())
	checkConsistent(t, ed)
}

func TestCreateSynsetRejectsDuplicateID(t *testing.T) {
	ed := newTestEditor(t)

	_, err := ed.CreateSynset(SynsetSpec{ID: "test-wn-1-n", PartOfSpeech: "n"})
	require.NoError(t, err)

	_, err = ed.CreateSynset(SynsetSpec{ID: "test-wn-1-n", PartOfSpeech: "n"})
	var shapeErr *InvalidShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "synset id", shapeErr.Field)
	assert.Equal(t, 1, ed.Stats().Synsets)
}

func TestModifySynset(t *testing.T) {
	ed := newTestEditor(t)
	ss, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Definition: "first try"})
	require.NoError(t, err)

	_, err = ed.ModifySynset(ss.ID, SynsetPatch{Definition: "better wording"})
	require.NoError(t, err)
	require.Len(t, ss.Definitions, 1)
	assert.Equal(t, "better wording", ss.Definitions[0].Text)

	ili := "i12345"
	_, err = ed.ModifySynset(ss.ID, SynsetPatch{
		AddDefinitions: []string{"a second gloss"},
		AddExamples:    []string{"used in a sentence"},
		ILI:            &ili,
	})
	require.NoError(t, err)
	assert.Len(t, ss.Definitions, 2)
	assert.Len(t, ss.Examples, 1)
	assert.Equal(t, "i12345", ss.ILI)

	_, err = ed.ModifySynset("no-such-synset", SynsetPatch{})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "synset", nfErr.Kind)
}

func TestRemoveSynsetCascades(t *testing.T) {
	ed := newTestEditor(t)

	animal, err := ed.CreateSynset(SynsetSpec{
		PartOfSpeech: "n",
		Definition:   "A living organism",
		Words:        []string{"animal", "creature"},
	})
	require.NoError(t, err)

	require.NoError(t, ed.RemoveSynset(animal.ID))

	// Synset, both senses, and both now-orphaned entries are gone.
	assert.Equal(t, Stats{}, ed.Stats())
	_, ok := ed.GetSynset(animal.ID)
	assert.False(t, ok)
	assert.Empty(t, ed.FindEntries("animal", ""))
	assert.Empty(t, ed.FindEntries("creature", ""))
	checkConsistent(t, ed)
}

func TestRemoveSynsetKeepsEntriesWithOtherSenses(t *testing.T) {
	ed := newTestEditor(t)

	dogAnimal, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog", "hound"}})
	require.NoError(t, err)
	dogPerson, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog"}})
	require.NoError(t, err)

	dog := ed.FindEntries("dog", "n")
	require.Len(t, dog, 1)
	require.Len(t, dog[0].Senses, 2)

	require.NoError(t, ed.RemoveSynset(dogPerson.ID))

	// "dog" keeps its animal sense; "hound" is untouched.
	dog = ed.FindEntries("dog", "n")
	require.Len(t, dog, 1)
	require.Len(t, dog[0].Senses, 1)
	assert.Equal(t, dogAnimal.ID, dog[0].Senses[0].Synset)
	assert.Len(t, ed.FindEntries("hound", "n"), 1)
	checkConsistent(t, ed)
}

func TestRemoveSynsetPrunesRelations(t *testing.T) {
	ed := newTestEditor(t)

	animal, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"animal"}})
	require.NoError(t, err)
	dog, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog"}})
	require.NoError(t, err)
	cat, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"cat"}})
	require.NoError(t, err)

	_, err = ed.AddSynsetRelation(dog.ID, animal.ID, "hypernym")
	require.NoError(t, err)
	_, err = ed.AddSynsetRelation(cat.ID, animal.ID, "hypernym")
	require.NoError(t, err)
	_, err = ed.AddSynsetRelation(dog.ID, cat.ID, "also")
	require.NoError(t, err)

	catSense := ed.FindEntries("cat", "n")[0].Senses[0]
	dogSense := ed.FindEntries("dog", "n")[0].Senses[0]
	_, err = ed.AddSenseRelation(dogSense.ID, catSense.ID, "antonym")
	require.NoError(t, err)

	require.NoError(t, ed.RemoveSynset(cat.ID))

	// dog keeps its hypernym edge to animal but loses both edges into cat's
	// subtree: the synset relation and the sense relation to cat's sense.
	require.Len(t, dog.Relations, 1)
	assert.Equal(t, animal.ID, dog.Relations[0].Target)
	assert.Empty(t, dogSense.Relations)
	assert.Empty(t, ed.Check())
	checkConsistent(t, ed)
}

func TestRemoveEntryLeavesSynsetsAlone(t *testing.T) {
	ed := newTestEditor(t)

	ss, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog", "hound"}})
	require.NoError(t, err)

	dog := ed.FindEntries("dog", "n")[0]
	hound := ed.FindEntries("hound", "n")[0]
	_, err = ed.AddSenseRelation(hound.Senses[0].ID, dog.Senses[0].ID, "also")
	require.NoError(t, err)

	require.NoError(t, ed.RemoveEntry(dog.ID))

	_, ok := ed.GetSynset(ss.ID)
	assert.True(t, ok, "synset must survive member removal")
	assert.Empty(t, ed.FindEntries("dog", ""))
	assert.Empty(t, hound.Senses[0].Relations, "relation to removed sense must be pruned")
	checkConsistent(t, ed)

	err = ed.RemoveEntry(dog.ID)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestAddWordToSynsetReusesEntry(t *testing.T) {
	ed := newTestEditor(t)

	first, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog"}})
	require.NoError(t, err)
	second, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n"})
	require.NoError(t, err)

	entry, err := ed.AddWordToSynset(second.ID, "dog", "n")
	require.NoError(t, err)
	assert.Equal(t, 1, ed.Stats().Entries, "existing entry must be reused")
	require.Len(t, entry.Senses, 2)
	assert.Equal(t, first.ID, entry.Senses[0].Synset)
	assert.Equal(t, second.ID, entry.Senses[1].Synset)

	// Adding the same word to the same synset again is a no-op.
	again, err := ed.AddWordToSynset(second.ID, "dog", "n")
	require.NoError(t, err)
	assert.Same(t, entry, again)
	assert.Len(t, entry.Senses, 2)
	checkConsistent(t, ed)
}

func TestAddWordToSynsetWithoutPOS(t *testing.T) {
	ed := newTestEditor(t)

	ss, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Definition: "a young dog"})
	require.NoError(t, err)

	// No matching entry: one is created with the synset's part of speech.
	entry, err := ed.AddWordToSynset(ss.ID, "pupper", "")
	require.NoError(t, err)
	assert.Equal(t, "n", entry.Lemma.PartOfSpeech)

	// One matching entry: reused whatever its part of speech.
	other, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n"})
	require.NoError(t, err)
	again, err := ed.AddWordToSynset(other.ID, "pupper", "")
	require.NoError(t, err)
	assert.Same(t, entry, again)

	// Two matching entries: refused rather than ranked.
	_, err = ed.CreateEntry("pupper", "v")
	require.NoError(t, err)
	_, err = ed.AddWordToSynset(other.ID, "pupper", "")
	var ambErr *AmbiguousMatchError
	require.ErrorAs(t, err, &ambErr)
	assert.Equal(t, "pupper", ambErr.Lemma)
	assert.Equal(t, 2, ambErr.Matches)
	checkConsistent(t, ed)
}

func TestAddWordToSynsetUnknownSynset(t *testing.T) {
	ed := newTestEditor(t)
	_, err := ed.AddWordToSynset("no-such-synset", "dog", "n")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "synset", nfErr.Kind)
	assert.Equal(t, Stats{}, ed.Stats())
}

func TestCreateEntry(t *testing.T) {
	ed := newTestEditor(t)

	entry, err := ed.CreateEntry("guinea pig", "n", "guinea pigs")
	require.NoError(t, err)
	assert.Contains(t, entry.ID, "guinea_pig")
	assert.Equal(t, "guinea pig", entry.Lemma.WrittenForm)
	require.Len(t, entry.Forms, 1)
	assert.Equal(t, "guinea pigs", entry.Forms[0].WrittenForm)

	_, err = ed.CreateEntry("  ", "n")
	var shapeErr *InvalidShapeError
	require.ErrorAs(t, err, &shapeErr)

	_, err = ed.CreateEntry("dog", "z")
	require.ErrorAs(t, err, &shapeErr)
	checkConsistent(t, ed)
}

func TestFindEntriesFiltersByPOS(t *testing.T) {
	ed := newTestEditor(t)

	_, err := ed.CreateEntry("run", "v")
	require.NoError(t, err)
	_, err = ed.CreateEntry("run", "n")
	require.NoError(t, err)

	assert.Len(t, ed.FindEntries("run", ""), 2)
	require.Len(t, ed.FindEntries("run", "v"), 1)
	assert.Equal(t, "v", ed.FindEntries("run", "v")[0].Lemma.PartOfSpeech)
	assert.Empty(t, ed.FindEntries("run", "a"))
	assert.Empty(t, ed.FindEntries("walk", ""))
}

func TestSynsetRelationValidation(t *testing.T) {
	ed := newTestEditor(t)

	a, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n"})
	require.NoError(t, err)
	b, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n"})
	require.NoError(t, err)

	warn, err := ed.AddSynsetRelation(a.ID, b.ID, "hypernym")
	require.NoError(t, err)
	assert.Nil(t, warn)

	// Unknown type warns but the relation is created anyway.
	warn, err = ed.AddSynsetRelation(a.ID, b.ID, "made-up-relation")
	require.NoError(t, err)
	require.NotNil(t, warn)
	assert.Equal(t, "made-up-relation", warn.RelationType)
	require.Len(t, a.Relations, 2)
	assert.Equal(t, "made-up-relation", a.Relations[1].Type)

	warn, err = ed.AddSynsetRelation(a.ID, b.ID, "another-made-up", SkipValidation())
	require.NoError(t, err)
	assert.Nil(t, warn)
	assert.Len(t, a.Relations, 3)

	_, err = ed.AddSynsetRelation(a.ID, "no-such-synset", "hypernym")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Len(t, a.Relations, 3)
}

func TestSenseRelationTargets(t *testing.T) {
	ed := newTestEditor(t)

	ss, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog", "cat"}})
	require.NoError(t, err)
	dogSense := ed.FindEntries("dog", "n")[0].Senses[0]
	catSense := ed.FindEntries("cat", "n")[0].Senses[0]

	warn, err := ed.AddSenseRelation(dogSense.ID, catSense.ID, "antonym")
	require.NoError(t, err)
	assert.Nil(t, warn)

	// A synset is also a legal target for a sense relation.
	warn, err = ed.AddSenseRelation(dogSense.ID, ss.ID, "domain_topic")
	require.NoError(t, err)
	assert.Nil(t, warn)
	assert.Len(t, dogSense.Relations, 2)

	_, err = ed.AddSenseRelation(dogSense.ID, "nowhere", "antonym")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)

	_, err = ed.AddSenseRelation(ss.ID, catSense.ID, "antonym")
	require.ErrorAs(t, err, &nfErr, "synset cannot be the source of a sense relation")
}

func TestCustomRelationVocabulary(t *testing.T) {
	ed, err := New(Options{
		ID:                  "test-wn",
		SynsetRelationVocab: vocab.NewSet("broader", "narrower"),
	})
	require.NoError(t, err)

	a, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n"})
	require.NoError(t, err)
	b, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n"})
	require.NoError(t, err)

	warn, err := ed.AddSynsetRelation(a.ID, b.ID, "broader")
	require.NoError(t, err)
	assert.Nil(t, warn)

	warn, err = ed.AddSynsetRelation(a.ID, b.ID, "hypernym")
	require.NoError(t, err)
	assert.NotNil(t, warn, "built-in types are unknown to a replacement vocabulary")
}

func TestAddSenseCount(t *testing.T) {
	ed := newTestEditor(t)
	_, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog"}})
	require.NoError(t, err)
	sense := ed.FindEntries("dog", "n")[0].Senses[0]

	require.NoError(t, ed.AddSenseCount(sense.ID, 42))
	require.Len(t, sense.Counts, 1)
	assert.Equal(t, 42, sense.Counts[0].Value)

	err = ed.AddSenseCount(sense.ID, -1)
	var shapeErr *InvalidShapeError
	require.ErrorAs(t, err, &shapeErr)

	err = ed.AddSenseCount("no-such-sense", 1)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestSetAdjposition(t *testing.T) {
	ed := newTestEditor(t)

	adj, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "a", Words: []string{"big"}})
	require.NoError(t, err)
	_ = adj
	noun, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog"}})
	require.NoError(t, err)
	_ = noun

	bigSense := ed.FindEntries("big", "a")[0].Senses[0]
	require.NoError(t, ed.SetAdjposition(bigSense.ID, "ip"))
	assert.Equal(t, "ip", bigSense.Adjposition)

	var shapeErr *InvalidShapeError
	require.ErrorAs(t, ed.SetAdjposition(bigSense.ID, "xx"), &shapeErr)

	dogSense := ed.FindEntries("dog", "n")[0].Senses[0]
	require.ErrorAs(t, ed.SetAdjposition(dogSense.ID, "a"), &shapeErr)
}

func TestMetadataUpdates(t *testing.T) {
	ed := newTestEditor(t)

	ed.SetLabel("Renamed WordNet")
	ed.SetVersion("2.0")
	ed.SetURL("https://example.com/wn")
	ed.UpdateMetadata(Metadata{Email: "team@example.com", Citation: "Example et al. 2026"})

	meta := ed.Metadata()
	assert.Equal(t, "Renamed WordNet", meta.Label)
	assert.Equal(t, "2.0", meta.Version)
	assert.Equal(t, "https://example.com/wn", meta.URL)
	assert.Equal(t, "team@example.com", meta.Email)
	assert.Equal(t, "Example et al. 2026", meta.Citation)
	// UpdateMetadata skips empty fields.
	assert.Equal(t, "Renamed WordNet", meta.Label)
}

func TestLMFVersionNegotiation(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE LexicalResource SYSTEM "http://globalwordnet.github.io/schemas/WN-LMF-1.1.dtd">
<LexicalResource>
  <Lexicon id="x" label="x" language="en" email="" license="" version="1"/>
</LexicalResource>`
	res, err := lmf.Load(strings.NewReader(doc))
	require.NoError(t, err)

	ed, err := FromResource(res, Options{})
	require.NoError(t, err)
	assert.Equal(t, "1.1", ed.LMFVersion(), "export reuses the read version by default")

	ed.SetLMFVersion("1.4")
	assert.Equal(t, "1.4", ed.LMFVersion())

	var buf bytes.Buffer
	require.NoError(t, ed.Export(&buf))
	assert.Contains(t, buf.String(), "WN-LMF-1.4.dtd")
}

func TestFromResourceNegotiatesMetadata(t *testing.T) {
	res := &lmf.Resource{Lexicons: []*lmf.Lexicon{{
		ID: "old-id", Label: "Old", Language: "en", Version: "1",
	}}}
	ed, err := FromResource(res, Options{Label: "New Label", Version: "2"})
	require.NoError(t, err)

	meta := ed.Metadata()
	assert.Equal(t, "old-id", meta.ID, "unset option leaves the loaded value")
	assert.Equal(t, "New Label", meta.Label)
	assert.Equal(t, "2", meta.Version)

	_, err = FromResource(&lmf.Resource{}, Options{})
	var shapeErr *InvalidShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestSnapshotIsIsolated(t *testing.T) {
	ed := newTestEditor(t)
	ss, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Definition: "original", Words: []string{"dog"}})
	require.NoError(t, err)

	snap := ed.Snapshot()
	_, err = ed.ModifySynset(ss.ID, SynsetPatch{Definition: "changed"})
	require.NoError(t, err)

	assert.Equal(t, "original", snap.Lexicons[0].Synsets[0].Definitions[0].Text)
	assert.Equal(t, ed.LMFVersion(), snap.LMFVersion)
}

func TestCheckReportsDanglingReferences(t *testing.T) {
	ed := newTestEditor(t)
	assert.Empty(t, ed.Check())

	ss, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog"}})
	require.NoError(t, err)
	assert.Empty(t, ed.Check())

	// Mutating the model directly is exactly what Check exists to catch.
	_, err = ed.CreateEntry("bare", "n")
	require.NoError(t, err)
	ss.Relations = append(ss.Relations, &lmf.Relation{Type: "hypernym", Target: "gone"})
	ed.FindEntries("dog", "n")[0].Senses[0].Synset = "also-gone"

	problems := ed.Check()
	require.Len(t, problems, 3)
	kinds := map[string]int{}
	for _, p := range problems {
		kinds[p.Kind]++
	}
	assert.Equal(t, map[string]int{"entry": 1, "sense": 1, "synset": 1}, kinds)
}

func TestExportRoundTrip(t *testing.T) {
	ed := newTestEditor(t)
	animal, err := ed.CreateSynset(SynsetSpec{
		PartOfSpeech: "n",
		Definition:   "A living organism",
		Words:        []string{"animal", "creature"},
	})
	require.NoError(t, err)
	dog, err := ed.CreateSynset(SynsetSpec{PartOfSpeech: "n", Words: []string{"dog"}})
	require.NoError(t, err)
	_, err = ed.AddSynsetRelation(dog.ID, animal.ID, "hypernym")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ed.Export(&buf))

	reloaded, err := lmf.Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, lmf.Equal(ed.Snapshot(), reloaded))

	ed2, err := FromResource(reloaded, Options{})
	require.NoError(t, err)
	assert.Equal(t, ed.Stats(), ed2.Stats())
	checkConsistent(t, ed2)
}

func TestValidateRelationIsPure(t *testing.T) {
	assert.Nil(t, ValidateRelation("hypernym", vocab.SynsetRelations))
	warn := ValidateRelation("bogus", vocab.SynsetRelations)
	require.NotNil(t, warn)
	assert.Contains(t, warn.Message, "bogus")
	assert.Contains(t, warn.String(), "bogus")
}
