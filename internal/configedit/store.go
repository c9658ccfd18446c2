// Package configedit manages the directory of YAML model definition files:
// listing, create-from-template, whole-file read/replace and delete.
package configedit

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"llmtools/internal/common/fsutil"
)

// Ext is the extension of managed config files.
const Ext = ".yaml"

//go:embed default_template.yaml
var defaultTemplate []byte

// Store operates on one models directory. Concurrent writers race and the
// last write wins.
type Store struct {
	dir      string
	template string
}

// NewStore manages *.yaml files in dir. templatePath is the file copied
// into new configs; empty uses the built-in template.
func NewStore(dir, templatePath string) *Store {
	return &Store{dir: dir, template: templatePath}
}

// Dir is the resolved models directory.
func (s *Store) Dir() (string, error) {
	base, err := fsutil.ExpandHome(s.dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}
	return abs, nil
}

// List returns the sorted *.yaml filenames in the directory. A missing
// directory is a dirNotFoundError.
func (s *Store) List() ([]string, error) {
	abs, err := s.Dir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, dirNotFoundError{dir: abs}
		}
		return nil, fmt.Errorf("read dir: %w", err)
	}
	files := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name := e.Name(); strings.HasSuffix(name, Ext) {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	return files, nil
}

// fileName validates a config name and returns its filename. The ".yaml"
// suffix is optional on input.
func fileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	base := strings.TrimSuffix(name, Ext)
	if base == "" || base == "." || base == ".." {
		return "", invalidNameError{name: name, reason: "name is empty"}
	}
	if strings.ContainsAny(base, `/\`) || strings.ContainsRune(base, 0) {
		return "", invalidNameError{name: name, reason: "path separators are not allowed"}
	}
	if strings.HasPrefix(base, ".") {
		return "", invalidNameError{name: name, reason: "hidden files are not allowed"}
	}
	return base + Ext, nil
}

func (s *Store) path(name string) (string, string, error) {
	fn, err := fileName(name)
	if err != nil {
		return "", "", err
	}
	abs, err := s.Dir()
	if err != nil {
		return "", "", err
	}
	return fn, filepath.Join(abs, fn), nil
}

func (s *Store) templateContent() ([]byte, error) {
	if s.template == "" {
		return defaultTemplate, nil
	}
	p, err := fsutil.ExpandHome(s.template)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, notFoundError{what: "template", name: p}
		}
		return nil, fmt.Errorf("read template: %w", err)
	}
	return b, nil
}

// Create writes <name>.yaml with exactly the template contents. An existing
// file is never overwritten.
func (s *Store) Create(name string) (string, error) {
	fn, p, err := s.path(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(filepath.Dir(p)); errors.Is(err, os.ErrNotExist) {
		return "", dirNotFoundError{dir: filepath.Dir(p)}
	}
	tpl, err := s.templateContent()
	if err != nil {
		return "", err
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", alreadyExistsError{name: fn}
		}
		return "", err
	}
	_, werr := f.Write(tpl)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(p)
		return "", werr
	}
	return fn, nil
}

// Read returns the whole file content.
func (s *Store) Read(name string) (string, error) {
	fn, p, err := s.path(name)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", notFoundError{what: "config", name: fn}
		}
		return "", err
	}
	return string(b), nil
}

// Save replaces the whole content of an existing file.
func (s *Store) Save(name, content string) error {
	fn, p, err := s.path(name)
	if err != nil {
		return err
	}
	if !fsutil.PathExists(p) {
		return notFoundError{what: "config", name: fn}
	}
	_, err = fsutil.WriteFileAtomic(p, strings.NewReader(content), 0o644)
	return err
}

// Delete removes a config file.
func (s *Store) Delete(name string) error {
	fn, p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return notFoundError{what: "config", name: fn}
		}
		return err
	}
	return nil
}
