// Package cachefmt reads and writes a msgpack file of per-case kernel
// summaries and reports whether a case's content hash is unchanged
// since the file was written. The driver does not use it: `tclc run`
// neither loads nor saves a cache and re-lowers every case, so the
// file never affects Lower/Diff/Print output (§6.4).
package cachefmt

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"tclc/internal/ir"
)

// Summary is the cached shape of one kernel: just enough to detect
// "this case hasn't changed" without re-parsing it.
type Summary struct {
	Name      string   `msgpack:"name"`
	Hash      string   `msgpack:"hash"`
	Inputs    []string `msgpack:"inputs"`
	Outputs   []string `msgpack:"outputs"`
	StmtCount int      `msgpack:"stmt_count"`
}

// Summarize builds a Summary from a parsed Kernel and the content hash
// of the case JSON it was parsed from.
func Summarize(k *ir.Kernel, hash string) Summary {
	s := Summary{Name: k.Name, Hash: hash, StmtCount: len(k.Stmts)}
	for _, v := range k.Inputs {
		s.Inputs = append(s.Inputs, v.Name)
	}
	for _, v := range k.Outputs {
		s.Outputs = append(s.Outputs, v.Name)
	}
	return s
}

// Cache maps a case name to its last-known Summary.
type Cache map[string]Summary

// Load reads a cache file. A missing file returns an empty, valid
// Cache rather than an error — the cache is optional acceleration,
// never a correctness requirement.
func Load(path string) (Cache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Cache{}, nil
	}
	if err != nil {
		return nil, err
	}
	var c Cache
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c == nil {
		c = Cache{}
	}
	return c, nil
}

// Save writes the cache to path.
func (c Cache) Save(path string) error {
	data, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Unchanged reports whether caseName's last recorded hash matches
// hash — i.e. the case file has not changed since the cache was last
// written.
func (c Cache) Unchanged(caseName, hash string) bool {
	s, ok := c[caseName]
	return ok && s.Hash == hash
}
