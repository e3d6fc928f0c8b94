package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bond-lab/wn-edit/pkg/editor"
	"github.com/bond-lab/wn-edit/pkg/lmf"
)

// runCLI executes one wnedit invocation in-process. The persistent flag
// globals are reset first so invocations in one test cannot leak flags
// into each other.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile, dbFlag = "", ""

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestNewCommand(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "cli-wn.xml")

	stdout, _, err := runCLI(t, "new",
		"--id", "cli-wn",
		"--label", "CLI WordNet",
		"--language", "ja",
		"--out", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cli-wn")

	res, err := lmf.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, res.Lexicons, 1)
	assert.Equal(t, "cli-wn", res.Lexicons[0].ID)
	assert.Equal(t, "CLI WordNet", res.Lexicons[0].Label)
	assert.Equal(t, "ja", res.Lexicons[0].Language)
	// Built-in defaults fill what neither flag nor config supplied.
	assert.Equal(t, editor.DefaultEmail, res.Lexicons[0].Email)
}

func TestNewRequiresID(t *testing.T) {
	chdir(t, t.TempDir())
	_, _, err := runCLI(t, "new")
	require.Error(t, err)
}

func TestImportExportCycle(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	src := filepath.Join(dir, "src.xml")
	db := filepath.Join(dir, "wn.db")
	dst := filepath.Join(dir, "dst.xml")

	ed, err := editor.New(editor.Options{ID: "cycle-wn", Label: "Cycle"})
	require.NoError(t, err)
	_, err = ed.CreateSynset(editor.SynsetSpec{
		PartOfSpeech: "n",
		Definition:   "A living organism",
		Words:        []string{"animal", "creature"},
	})
	require.NoError(t, err)
	require.NoError(t, ed.ExportFile(src))

	stdout, _, err := runCLI(t, "import", "--db", db, src)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cycle-wn")
	assert.Contains(t, stdout, "1 synsets")

	_, _, err = runCLI(t, "export", "--db", db, "--lexicon", "cycle-wn", "--out", dst)
	require.NoError(t, err)

	got, err := lmf.LoadFile(dst)
	require.NoError(t, err)
	assert.True(t, lmf.Equal(ed.Snapshot(), got), "export does not reproduce the import")
}

func TestImportReportsProblems(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	src := filepath.Join(dir, "src.xml")
	db := filepath.Join(dir, "wn.db")

	ed, err := editor.New(editor.Options{ID: "warn-wn"})
	require.NoError(t, err)
	_, err = ed.CreateEntry("orphan", "n")
	require.NoError(t, err)
	require.NoError(t, ed.ExportFile(src))

	_, stderr, err := runCLI(t, "import", "--db", db, src)
	require.NoError(t, err, "problems warn, they do not block the import")
	assert.Contains(t, stderr, "orphan")
	assert.Contains(t, stderr, "no senses")
}

func TestStatsFromFileAndStore(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	src := filepath.Join(dir, "src.xml")
	db := filepath.Join(dir, "wn.db")

	ed, err := editor.New(editor.Options{ID: "stats-wn", Label: "Stats"})
	require.NoError(t, err)
	_, err = ed.CreateSynset(editor.SynsetSpec{PartOfSpeech: "n", Words: []string{"dog", "hound"}})
	require.NoError(t, err)
	require.NoError(t, ed.ExportFile(src))

	stdout, _, err := runCLI(t, "stats", src)
	require.NoError(t, err)
	assert.Contains(t, stdout, "stats-wn")
	assert.Contains(t, stdout, "Synsets:  1")
	assert.Contains(t, stdout, "Entries:  2")
	assert.Contains(t, stdout, "Senses:   2")

	_, _, err = runCLI(t, "import", "--db", db, src)
	require.NoError(t, err)
	stored, _, err := runCLI(t, "stats", "--db", db, "--lexicon", "stats-wn")
	require.NoError(t, err)
	assert.Equal(t, stdout, stored, "file and store stats must agree")

	_, _, err = runCLI(t, "stats")
	require.Error(t, err, "needs a FILE or --lexicon")
}

func TestExportUnknownLexicon(t *testing.T) {
	chdir(t, t.TempDir())
	db := filepath.Join(t.TempDir(), "wn.db")

	_, _, err := runCLI(t, "export", "--db", db, "--lexicon", "missing-wn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-wn")
}
