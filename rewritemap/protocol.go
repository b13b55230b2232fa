// Package rewritemap answers Apache RewriteMap lookups ("prg:" maps) against
// plain-text lists of IP addresses, CIDR blocks, user agent patterns, or exact
// strings, so that clients found by check402 can be acted on by the server.
//
// Each request is one line of the form
//
//	<list filename>;<value>
//
// and each answer is one line, FOUND or NULL. Lists are reloaded whenever
// their files change.
package rewritemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	Found    = "FOUND"
	NotFound = "NULL"

	// maxLineLength bounds a single request line.
	maxLineLength = 1024 * 1024
)

// ParseRequest splits a request line into list filename and lookup value.
// Whitespace around either part is removed, but spaces inside the value are
// kept.
func ParseRequest(line string) (list, value string, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", errors.New("empty input")
	}
	sep := strings.IndexRune(line, ';')
	if sep == -1 {
		return "", "", errors.New("missing delimiter ; between list and lookup value")
	}
	list = strings.TrimSpace(line[:sep])
	value = strings.TrimSpace(line[sep+1:])
	if list == "" || value == "" {
		return "", "", errors.New("missing list or lookup value")
	}
	return list, value, nil
}

// Lookup answers a single request line with Found or NotFound. Anything wrong
// with the request is logged and answered NotFound.
func (d *Directory) Lookup(line string) string {
	name, value, err := ParseRequest(line)
	if err != nil {
		d.logger.Printf("invalid input %q: %v", line, err)
		return NotFound
	}
	l, err := d.List(name)
	if err != nil {
		d.logger.Printf("rejecting list %q: %v", name, err)
		return NotFound
	}
	l.Refresh()
	if l.Match(value) {
		return Found
	}
	return NotFound
}

// Serve reads request lines from r until end of input, writing one answer
// line to w for each as soon as it's known. It returns any error reading r or
// writing w.
func (d *Directory) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, d.Lookup(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}
