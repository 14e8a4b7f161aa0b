// SPDX-License-Identifier: MIT

// Package flatcfg persists a typed settings catalog to a flat text file of
// "name: escaped-value" lines.
//
// A Manager owns an ordered Registry built exactly once from a
// caller-supplied catalog. Values are validated on assignment and on
// decode; the store file is rewritten atomically on every Save. The
// Manager performs no internal locking: callers sharing one Manager across
// goroutines must serialize access themselves.
package flatcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ManuGH/flatcfg/internal/log"
	"github.com/ManuGH/flatcfg/setting"
	"github.com/ManuGH/flatcfg/store"
)

// DefaultExtension is appended to store filenames that carry no extension.
const DefaultExtension = ".cfg"

// Characters not allowed in a store filename.
const forbiddenFilenameChars = `\/:*?<>|`

// Entry pairs a setting name with its container.
type Entry struct {
	Name    string
	Setting setting.Setting
}

// Catalog builds the full settings catalog for a Manager. It runs exactly
// once, before any file I/O.
type Catalog func() []Entry

// FilenameError reports a store filename containing forbidden characters.
type FilenameError struct {
	Name string
}

func (e *FilenameError) Error() string {
	return fmt.Sprintf("invalid store filename %q: must not contain any of %q", e.Name, forbiddenFilenameChars)
}

func validateFilename(name string) error {
	if name == "" || name == "." || strings.ContainsAny(name, forbiddenFilenameChars) {
		return &FilenameError{Name: name}
	}
	return nil
}

// Registry is the ordered name-to-setting mapping owned by a Manager. The
// key set is fixed at construction; only the values change afterwards.
type Registry struct {
	entries []store.Entry
	byName  map[string]setting.Setting
}

func newRegistry(catalog Catalog) (*Registry, error) {
	if catalog == nil {
		return nil, errors.New("flatcfg: nil catalog")
	}
	entries := catalog()

	r := &Registry{
		entries: make([]store.Entry, 0, len(entries)),
		byName:  make(map[string]setting.Setting, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("flatcfg: empty setting name in catalog")
		}
		// Names travel unescaped on the wire: one containing the
		// delimiter or a line break would save fine but never load back.
		if strings.Contains(e.Name, store.Delimiter) || strings.ContainsAny(e.Name, "\n\r") {
			return nil, fmt.Errorf("flatcfg: setting name %q contains reserved characters", e.Name)
		}
		if e.Setting == nil {
			return nil, fmt.Errorf("flatcfg: nil setting %q in catalog", e.Name)
		}
		if _, dup := r.byName[e.Name]; dup {
			return nil, fmt.Errorf("flatcfg: duplicate setting %q in catalog", e.Name)
		}
		r.entries = append(r.entries, store.Entry{Name: e.Name, Setting: e.Setting})
		r.byName[e.Name] = e.Setting
	}
	return r, nil
}

// Lookup returns the setting registered under name.
func (r *Registry) Lookup(name string) (setting.Setting, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Names returns the setting names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered settings.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns the ordered entries for iteration.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		entries[i] = Entry{Name: e.Name, Setting: e.Setting}
	}
	return entries
}

// Manager binds a Registry to one store file.
type Manager struct {
	path string
	reg  *Registry
	log  zerolog.Logger
}

// New builds the catalog, then bootstraps the store file: a missing file
// is created by saving the defaults, an existing one is loaded. A decode
// or validation failure during that load aborts construction. The
// returned Manager is ready for value access and Save calls.
func New(path string, catalog Catalog) (*Manager, error) {
	base := filepath.Base(path)
	if err := validateFilename(base); err != nil {
		return nil, err
	}
	if filepath.Ext(base) == "" {
		path += DefaultExtension
	}

	reg, err := newRegistry(catalog)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		path: path,
		reg:  reg,
		log:  log.WithComponent("manager"),
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat store file: %w", err)
		}
		// First run: persist the defaults so the file exists.
		if err := m.Save(); err != nil {
			return nil, err
		}
		m.log.Debug().Str(log.FieldPath, path).Msg("created store file with defaults")
		return m, nil
	}

	if err := store.Load(path, reg.entries); err != nil {
		return nil, err
	}
	m.log.Debug().Str(log.FieldPath, path).Int("settings", reg.Len()).Msg("loaded store file")
	return m, nil
}

// Save rewrites the store file from the current registry values. It can be
// called any number of times; an encode failure leaves the previous file
// intact.
func (m *Manager) Save() error {
	return store.Save(m.path, m.reg.entries)
}

// Registry returns the registry for iteration and inspection.
func (m *Manager) Registry() *Registry { return m.reg }

// Path returns the resolved store file path.
func (m *Manager) Path() string { return m.path }

func (m *Manager) reload() error {
	return store.Load(m.path, m.reg.entries)
}

// Get returns the current value of the named setting. The type parameter
// must match the variant's value type exactly.
func Get[T any](m *Manager, name string) (T, error) {
	var zero T
	s, ok := m.reg.Lookup(name)
	if !ok {
		return zero, fmt.Errorf("flatcfg: unknown setting %q", name)
	}
	v, ok := s.(*setting.Value[T])
	if !ok {
		return zero, fmt.Errorf("flatcfg: setting %q holds a different type", name)
	}
	return v.Value(), nil
}

// Set assigns a new value to the named setting, subject to its validity
// predicate.
func Set[T any](m *Manager, name string, val T) error {
	s, ok := m.reg.Lookup(name)
	if !ok {
		return fmt.Errorf("flatcfg: unknown setting %q", name)
	}
	v, ok := s.(*setting.Value[T])
	if !ok {
		return fmt.Errorf("flatcfg: setting %q holds a different type", name)
	}
	return v.Set(val)
}
