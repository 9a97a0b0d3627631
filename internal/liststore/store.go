// Package liststore persists named option lists under the picker
// config directory.
package liststore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/morrisclay/picker-cli/internal/config"
)

// ErrNotFound is returned when a named list does not exist.
var ErrNotFound = errors.New("list not found")

// List is a named, reusable option list.
type List struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Options   []string  `yaml:"options" json:"options"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`
}

// storeFile is the on-disk shape of lists.yaml.
type storeFile struct {
	Lists []List `yaml:"lists"`
}

// Store reads and writes named lists at a fixed path.
type Store struct {
	path string
}

// Open returns a store rooted at the default config directory.
func Open() (*Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, "lists.yaml")}, nil
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() (*storeFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &storeFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading lists: %w", err)
	}

	var f storeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing lists: %w", err)
	}
	return &f, nil
}

func (s *Store) save(f *storeFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// All returns every named list, sorted by name.
func (s *Store) All() ([]List, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.Slice(f.Lists, func(i, j int) bool {
		return f.Lists[i].Name < f.Lists[j].Name
	})
	return f.Lists, nil
}

// Get returns the list with the given name.
func (s *Store) Get(name string) (List, error) {
	f, err := s.load()
	if err != nil {
		return List{}, err
	}
	for _, l := range f.Lists {
		if l.Name == name {
			return l, nil
		}
	}
	return List{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Put creates the named list or replaces its options. The id and
// creation time survive replacement.
func (s *Store) Put(name string, options []string) (List, error) {
	f, err := s.load()
	if err != nil {
		return List{}, err
	}

	now := time.Now().UTC()
	for i, l := range f.Lists {
		if l.Name == name {
			f.Lists[i].Options = append([]string(nil), options...)
			f.Lists[i].UpdatedAt = now
			if err := s.save(f); err != nil {
				return List{}, err
			}
			return f.Lists[i], nil
		}
	}

	l := List{
		ID:        uuid.NewString(),
		Name:      name,
		Options:   append([]string(nil), options...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.Lists = append(f.Lists, l)
	if err := s.save(f); err != nil {
		return List{}, err
	}
	return l, nil
}

// Remove deletes the named list.
func (s *Store) Remove(name string) error {
	f, err := s.load()
	if err != nil {
		return err
	}
	for i, l := range f.Lists {
		if l.Name == name {
			f.Lists = append(f.Lists[:i], f.Lists[i+1:]...)
			return s.save(f)
		}
	}
	return fmt.Errorf("%q: %w", name, ErrNotFound)
}
