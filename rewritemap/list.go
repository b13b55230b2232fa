package rewritemap

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/bitfield/check402"
)

// Mode says how a list's entries are compared with lookup values.
type Mode string

const (
	Literal  Mode = "literal"
	RegexpCI Mode = "regex-ci"
	Regexp   Mode = "regex"
	Networks Mode = "nets"
)

// ModeFor returns the Mode implied by a list filename's suffix:
// ".ri.list" for case-insensitive regexps, ".re.list" for regexps,
// ".net.list" for IP addresses and CIDR blocks, and plain ".list" for exact
// strings.
func ModeFor(name string) Mode {
	switch {
	case strings.HasSuffix(name, ".ri.list"):
		return RegexpCI
	case strings.HasSuffix(name, ".re.list"):
		return Regexp
	case strings.HasSuffix(name, ".net.list"):
		return Networks
	default:
		return Literal
	}
}

// A List is one list file and the Matcher built from its current contents.
// It is safe for concurrent use.
type List struct {
	name   string
	path   string
	mode   Mode
	logger *log.Logger

	mu      sync.RWMutex
	modTime time.Time
	matcher Matcher
}

// NewList loads the list at path straight away. A missing file is not an
// error: the list just matches nothing until the file appears.
func NewList(name, path string, mode Mode, logger *log.Logger) *List {
	l := &List{name: name, path: path, mode: mode, logger: logger}
	l.Refresh()
	return l
}

// Mode returns the list's match mode.
func (l *List) Mode() Mode {
	return l.mode
}

// Refresh reloads the list if its file is newer than the loaded version, or
// if it has been removed since. Problems are logged and the current contents
// kept.
func (l *List) Refresh() {
	info, err := os.Stat(l.path)
	var modTime time.Time
	if err == nil {
		modTime = info.ModTime()
	}
	missing := errors.Is(err, fs.ErrNotExist)

	l.mu.RLock()
	current, loaded := l.modTime, l.matcher != nil
	l.mu.RUnlock()

	var reload bool
	switch {
	case err == nil:
		reload = current.IsZero() || modTime.After(current)
	case missing:
		reload = !current.IsZero() || !loaded
	default:
		l.logger.Printf("unable to stat list %q: %v", l.path, err)
	}
	if !reload {
		return
	}

	m, err := load(l.mode, l.path, l.logger)
	if err != nil {
		l.logger.Printf("failed to load list %q: %v", l.path, err)
		return
	}

	l.mu.Lock()
	l.matcher = m
	l.modTime = modTime
	l.mu.Unlock()

	l.logger.Printf("loaded list %q from %s (mode=%s)", l.name, l.path, l.mode)
}

// Match reports whether s matches the list as last loaded.
func (l *List) Match(s string) bool {
	l.mu.RLock()
	m := l.matcher
	l.mu.RUnlock()
	if m == nil {
		return false
	}
	return m.Match(s)
}

var skippable = regexp.MustCompile(`^(#|$)`)

// readEntries returns the trimmed lines of a list file, leaving out blank
// lines and comments.
func readEntries(path string) ([]string, error) {
	return check402.File(path).EachLine(func(line string, out *strings.Builder) {
		out.WriteString(strings.TrimSpace(line))
		out.WriteRune('\n')
	}).RejectRegexp(skippable).Slice()
}

func load(mode Mode, path string, logger *log.Logger) (Matcher, error) {
	entries, err := readEntries(path)
	if errors.Is(err, fs.ErrNotExist) {
		return never{}, nil
	}
	if err != nil {
		return nil, err
	}
	switch mode {
	case RegexpCI:
		return newPatterns(entries, true, logger), nil
	case Regexp:
		return newPatterns(entries, false, logger), nil
	case Networks:
		return newNetworks(entries, logger), nil
	default:
		return newLiteral(entries), nil
	}
}
