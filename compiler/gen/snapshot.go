package gen

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/georm/compiler/load"
)

// SnapshotFile is the name of the snapshot written to every output
// directory when the snapshot feature is enabled.
const SnapshotFile = ".georm.snapshot"

// snapshotVersion changes whenever the generated code changes for the same
// input, which invalidates every recorded digest.
const snapshotVersion = 1

// snapshotFile is the msgpack document stored in SnapshotFile.
type snapshotFile struct {
	Version  int               `msgpack:"version"`
	Entities map[string]string `msgpack:"entities"`
}

// snapshotInput is everything the file of one entity is generated from.
type snapshotInput struct {
	Schema   *load.Schema     `msgpack:"schema"`
	Header   string           `msgpack:"header"`
	Dialect  string           `msgpack:"dialect"`
	Features []string         `msgpack:"features"`
	Targets  []snapshotTarget `msgpack:"targets,omitempty"`
}

// snapshotTarget records what a relation accessor depends on in its target.
type snapshotTarget struct {
	Relation string `msgpack:"relation"`
	Name     string `msgpack:"name"`
	PkgPath  string `msgpack:"pkg_path"`
	Table    string `msgpack:"table"`
	Key      string `msgpack:"key"`
}

// snapshots tracks the digests of the output directories of one run.
type snapshots struct {
	mu      sync.Mutex
	digests map[*Type]string
	// dirs maps an output directory to its recorded digests by entity
	// name.
	dirs map[string]map[string]string
	gen  *JenniferGenerator
}

// snapshots reads the snapshot of every output directory. It returns nil
// when the snapshot feature is disabled.
func (g *JenniferGenerator) snapshots() (*snapshots, error) {
	if !g.FeatureEnabled(FeatureSnapshot.Name) {
		return nil, nil
	}
	s := &snapshots{
		digests: make(map[*Type]string, len(g.graph.Nodes)),
		dirs:    make(map[string]map[string]string),
		gen:     g,
	}
	for _, t := range g.graph.Nodes {
		d, err := digest(g.graph, t)
		if err != nil {
			return nil, NewGenerationError("snapshot", t.FileName(), t.Name, err)
		}
		s.digests[t] = d
		dir := g.outDir(t)
		if _, ok := s.dirs[dir]; ok {
			continue
		}
		recorded, err := readSnapshot(dir)
		if err != nil {
			return nil, NewGenerationError("snapshot", filepath.Join(dir, SnapshotFile), "", err)
		}
		s.dirs[dir] = recorded
	}
	return s, nil
}

// unchanged reports whether the recorded digest of t matches and its file
// still exists.
func (s *snapshots) unchanged(t *Type, path string) bool {
	s.mu.Lock()
	recorded := s.dirs[s.gen.outDir(t)][t.Name]
	s.mu.Unlock()
	if recorded == "" || recorded != s.digests[t] {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// commit records the digest of t after its file was written.
func (s *snapshots) commit(t *Type) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirs[s.gen.outDir(t)][t.Name] = s.digests[t]
}

// save writes the snapshot of every output directory, keeping only the
// entities of the graph.
func (s *snapshots) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for dir, recorded := range s.dirs {
		entities := make(map[string]string)
		for _, t := range s.gen.graph.Nodes {
			if s.gen.outDir(t) != dir {
				continue
			}
			if d, ok := recorded[t.Name]; ok {
				entities[t.Name] = d
			}
		}
		if err := writeSnapshot(dir, entities); err != nil {
			return NewGenerationError("snapshot", filepath.Join(dir, SnapshotFile), "", err)
		}
	}
	return nil
}

// digest returns the hex-encoded sha256 of everything the file of t is
// generated from.
func digest(g *Graph, t *Type) (string, error) {
	in := snapshotInput{
		Schema:  t.Schema(),
		Header:  g.Header,
		Dialect: g.Dialect,
	}
	for _, f := range AllFeatures {
		if g.FeatureEnabled(f.Name) {
			in.Features = append(in.Features, f.Name)
		}
	}
	for _, r := range t.Relations {
		in.Targets = append(in.Targets, snapshotTarget{
			Relation: r.Name,
			Name:     r.Target.Name,
			PkgPath:  r.Target.PkgPath,
			Table:    r.Target.Table,
			Key:      strings.Join(columnsOf(r.Target.IDFields()), ","),
		})
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(in); err != nil {
		return "", err
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// readSnapshot reads the recorded digests of dir. A missing snapshot, or
// one written by another version, yields an empty set.
func readSnapshot(dir string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, SnapshotFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return make(map[string]string), nil
	case err != nil:
		return nil, err
	}
	var f snapshotFile
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Version != snapshotVersion || f.Entities == nil {
		return make(map[string]string), nil
	}
	return f.Entities, nil
}

func writeSnapshot(dir string, entities map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(snapshotFile{Version: snapshotVersion, Entities: entities}); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, SnapshotFile), buf.Bytes(), 0o644)
}
