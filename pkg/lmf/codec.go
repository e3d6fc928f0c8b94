package lmf

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
)

// The DOCTYPE names the schema version, e.g.
// http://globalwordnet.github.io/schemas/WN-LMF-1.4.dtd
var dtdVersionRe = regexp.MustCompile(`WN-LMF-(\d+\.\d+)\.dtd`)

// Load parses a WN-LMF document from r. The schema version is recovered
// from the DOCTYPE when present, otherwise DefaultVersion is assumed.
func Load(r io.Reader) (*Resource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	res := &Resource{}
	if err := xml.Unmarshal(data, res); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	res.LMFVersion = DefaultVersion
	if m := dtdVersionRe.FindSubmatch(data); m != nil {
		res.LMFVersion = string(m[1])
	}

	// xml.Unmarshal leaves nil slices for absent children; normalize to
	// empty so editing code can append without nil checks.
	for _, lex := range res.Lexicons {
		if lex.Entries == nil {
			lex.Entries = []*Entry{}
		}
		if lex.Synsets == nil {
			lex.Synsets = []*Synset{}
		}
		for _, e := range lex.Entries {
			if e.Senses == nil {
				e.Senses = []*Sense{}
			}
		}
	}
	return res, nil
}

// LoadFile parses a WN-LMF document from the file at path.
func LoadFile(path string) (*Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Dump writes res as a WN-LMF document to w. Output is deterministic for
// identical input: attribute and child order follow the in-memory order.
func Dump(w io.Writer, res *Resource) error {
	version := res.LMFVersion
	if version == "" {
		version = DefaultVersion
	}

	header := fmt.Sprintf(
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"+
			"<!DOCTYPE LexicalResource SYSTEM \"http://globalwordnet.github.io/schemas/WN-LMF-%s.dtd\">\n",
		version)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// DumpFile writes res as a WN-LMF document to the file at path.
func DumpFile(path string, res *Resource) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Dump(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
