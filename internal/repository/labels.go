// Package repository contains data access logic separated from HTTP handlers.
// This file defines the LabelRepo, the in-memory lookup table behind the
// predict endpoint.  The table is built once at startup from a JSON file and
// is never mutated afterwards, so concurrent readers need no synchronization.
package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jobname/recommender/internal/model"
)

// LabelRepo answers exact-match lookups against the loaded dataset.  It is
// read-only after construction; the only way to obtain one is through Load
// or LoadFile, which keeps the table immutable by construction.
type LabelRepo struct {
	records map[string]model.Record // keyed by the raw input string, case-sensitive
}

// Load decodes a JSON mapping of input string to record from r and builds
// the lookup table.  A decoding error means the dataset is malformed and is
// returned as-is for the caller to treat as fatal.
func Load(r io.Reader) (*LabelRepo, error) {
	records := make(map[string]model.Record)
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &LabelRepo{records: records}, nil
}

// LoadFile opens path and delegates to Load.  A missing or unreadable file
// is an error; there is no fallback dataset.
func LoadFile(path string) (*LabelRepo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns the label stored for input and whether the key exists.
// The match is exact and case-sensitive; no trimming or normalization is
// applied to the key.
func (r *LabelRepo) Lookup(input string) (model.Label, bool) {
	rec, ok := r.records[input]
	return rec.Label, ok
}

// Size reports how many entries the table holds.  Used for startup logging.
func (r *LabelRepo) Size() int {
	return len(r.records)
}
