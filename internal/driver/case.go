package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// Case is the §6.1 JSON case schema.
type Case struct {
	Name     string   `json:"name"`
	Ins      []string `json:"ins"`
	Outs     []string `json:"outs"`
	DataType string   `json:"data_type"`
	Kernel   string   `json:"kernel"`
	GradTo   []string `json:"grad_to,omitempty"`
}

// LoadCase reads and decodes a case file from path.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("driver: decode %s: %w", path, err)
	}
	return &c, nil
}

// Write serializes a case back to the §6.1 schema. grad_to is always
// omitted on generated output: it is a request-only field (§6.1).
func (c *Case) Write(path string) error {
	out := *c
	out.GradTo = nil
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Hash returns a stable content hash of the case's JSON encoding, in
// the form internal/cachefmt stores as Summary.Hash (no driver code
// path calls it). It hashes the already-decoded
// struct (not the raw file bytes) so that whitespace-only edits to the
// source JSON don't invalidate the cache.
func (c *Case) Hash() string {
	data, err := json.Marshal(c)
	if err != nil {
		// Case always marshals; this would only fire on an
		// unmarshalable field, which Case does not have.
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
