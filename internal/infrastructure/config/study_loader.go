// Package config provides infrastructure for loading study files.
// This package handles YAML parsing, file I/O, variable substitution, and study inheritance.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/rankine-dev/rankine/internal/application/ports"
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/services"
)

// Ensure interface compliance
var _ ports.StudyLoader = (*StudyLoader)(nil)

// StudyLoader handles loading studies from YAML files with inheritance support.
//
// Inheritance Resolution:
//   - Studies can specify parent studies via the `extends` field
//   - Parents are loaded recursively and merged left-to-right
//   - Circular inheritance is detected and rejected
//   - Relative paths are resolved from the extending study's directory
//
// Variables declared in parents are visible to children; a child's own
// vars win on conflict.
type StudyLoader struct {
	merger      *services.StudyMerger
	substitutor *VariableSubstitutor
}

// header is the part of a study read before variables are substituted.
type header struct {
	Vars    map[string]interface{} `yaml:"vars"`
	Extends []string               `yaml:"extends"`
}

// NewStudyLoader creates a new study loader.
func NewStudyLoader() *StudyLoader {
	return &StudyLoader{
		merger:      services.NewStudyMerger(),
		substitutor: NewVariableSubstitutor(),
	}
}

// LoadStudy loads a study and resolves all inheritance.
// The result is raw: defaults are not applied and nothing is validated.
func (l *StudyLoader) LoadStudy(path string) (*entities.Study, error) {
	visited := make(map[string]bool)
	return l.loadStudyRecursive(path, visited)
}

func (l *StudyLoader) loadStudyRecursive(path string, visited map[string]bool) (*entities.Study, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", path, err)
	}

	if visited[absPath] {
		return nil, fmt.Errorf("circular inheritance detected: %s", absPath)
	}
	visited[absPath] = true
	defer delete(visited, absPath)

	data, err := readFile(absPath)
	if err != nil {
		return nil, err
	}

	head, err := l.decodeHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", absPath, err)
	}

	parents := make([]*entities.Study, 0, len(head.Extends))
	inherited := map[string]interface{}{}
	for _, parentPath := range head.Extends {
		parent, err := l.loadStudyRecursive(resolveRelativePath(absPath, parentPath), visited)
		if err != nil {
			return nil, fmt.Errorf("loading parent %q: %w", parentPath, err)
		}
		for k, v := range parent.Vars {
			inherited[k] = v
		}
		parents = append(parents, parent)
	}
	for k, v := range head.Vars {
		inherited[k] = v
	}

	current, err := l.decode(data, inherited)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", absPath, err)
	}

	if len(parents) == 0 {
		return current, nil
	}
	return l.merger.MergeAll(parents, current), nil
}

// LoadStudyFromReader loads a single study from an io.Reader.
// Note: This does NOT resolve inheritance; extends entries are kept as-is.
func (l *StudyLoader) LoadStudyFromReader(r io.Reader) (*entities.Study, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read study: %w", err)
	}

	head, err := l.decodeHeader(data)
	if err != nil {
		return nil, err
	}
	return l.decode(data, head.Vars)
}

func (l *StudyLoader) decodeHeader(data []byte) (*header, error) {
	var head header
	if err := yaml.Unmarshal(l.substitutor.Mask(data), &head); err != nil {
		return nil, fmt.Errorf("failed to decode study YAML: %w", err)
	}
	return &head, nil
}

func (l *StudyLoader) decode(data []byte, vars map[string]interface{}) (*entities.Study, error) {
	substituted, err := l.substitutor.Substitute(data, vars)
	if err != nil {
		return nil, fmt.Errorf("substituting variables: %w", err)
	}

	var study entities.Study
	decoder := yaml.NewDecoder(bytes.NewReader(substituted))
	if err := decoder.Decode(&study); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to decode study YAML: empty document")
		}
		return nil, fmt.Errorf("failed to decode study YAML: %w", err)
	}

	if len(vars) > 0 {
		study.Vars = vars
	}
	return &study, nil
}

// readFile reads a study from disk.
func readFile(path string) ([]byte, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open study directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open study: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read study: %w", err)
	}
	return data, nil
}

// resolveRelativePath resolves a path relative to the current study's directory.
// If extendsPath is absolute, it is returned as-is.
func resolveRelativePath(currentPath, extendsPath string) string {
	if filepath.IsAbs(extendsPath) {
		return extendsPath
	}
	return filepath.Join(filepath.Dir(currentPath), extendsPath)
}
