package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bond-lab/wn-edit/pkg/lmf"
)

// LoadResource loads one lexicon into a resource, trying the bulk query
// path first. Exactly two failure classes hand control to the fallback:
// a schema mismatch and a driver-reported operational error. Anything
// else — including an unknown lexicon id — propagates as-is.
//
// The fallback asks the store to export the lexicon in the exchange format
// and reparses it through the same codec used for file-based loading, so
// both paths construct records through one code path. The two attempts run
// in sequence, never in parallel.
func (s *Store) LoadResource(lexiconID string) (*lmf.Resource, error) {
	res, err := s.loadFast(lexiconID)
	if err == nil {
		return res, nil
	}

	var schemaErr *SchemaError
	var storeErr *StoreError
	if !errors.As(err, &schemaErr) && !errors.As(err, &storeErr) {
		return nil, err
	}

	s.log.Warn("fast load failed, retrying via export",
		"lexicon", lexiconID, "error", err)

	var buf bytes.Buffer
	if expErr := s.ExportLexicon(&buf, lexiconID); expErr != nil {
		return nil, fmt.Errorf("fallback export after %v: %w", err, expErr)
	}
	res, loadErr := lmf.Load(&buf)
	if loadErr != nil {
		return nil, fmt.Errorf("fallback parse: %w", loadErr)
	}
	return res, nil
}
