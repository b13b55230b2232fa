package rewritemap

import (
	"errors"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

var listName = regexp.MustCompile(`^[A-Za-z0-9]+(?:\.(ri|re|net))?\.list$`)

// ValidateName checks that raw names a list file directly inside the lists
// directory, of the form name[.ri|.re|.net].list, and returns it trimmed.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", errors.New("empty list filename")
	}
	if name != filepath.Base(name) {
		return "", errors.New("list filename must not contain path separators")
	}
	if !listName.MatchString(name) {
		return "", errors.New("list filename must match name[.(ri|re|net)].list")
	}
	return name, nil
}

// Directory hands out the lists stored in one directory, loading each the
// first time it is asked for. It is safe for concurrent use.
type Directory struct {
	dir    string
	logger *log.Logger

	mu    sync.RWMutex
	lists map[string]*List
}

// NewDirectory returns a Directory serving lists from dir.
func NewDirectory(dir string, logger *log.Logger) *Directory {
	return &Directory{
		dir:    dir,
		logger: logger,
		lists:  map[string]*List{},
	}
}

// List returns the list with the given filename, or an error if the name is
// not valid.
func (d *Directory) List(name string) (*List, error) {
	name, err := ValidateName(name)
	if err != nil {
		return nil, err
	}

	d.mu.RLock()
	l := d.lists[name]
	d.mu.RUnlock()
	if l != nil {
		return l, nil
	}

	l = NewList(name, filepath.Join(d.dir, name), ModeFor(name), d.logger)

	d.mu.Lock()
	defer d.mu.Unlock()
	// someone else may have loaded it meanwhile
	if existing := d.lists[name]; existing != nil {
		return existing, nil
	}
	d.lists[name] = l
	return l, nil
}
