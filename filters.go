package check402

import (
	"bufio"
	"math"
	"regexp"
	"strings"
)

// EachLine calls the specified function for each line of input, passing it the
// line as a string, and a *strings.Builder to write its output to. The return
// value from EachLine is a pipe containing the contents of the strings.Builder.
// If there is an error reading the pipe, the pipe's error status is set, and
// EachLine returns the same pipe so that the error carries on down the
// chain.
func (p *Pipe) EachLine(process func(string, *strings.Builder)) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	scanner := newScanner(p)
	output := strings.Builder{}
	for scanner.Scan() {
		process(scanner.Text(), &output)
		if p.Error() != nil {
			return p
		}
	}
	err := scanner.Err()
	if err != nil {
		p.SetError(err)
		return p
	}
	return p.pipeFrom(output.String())
}

// ExclusiveStatus reads access log lines from the pipe, and returns a new pipe
// containing a report of every client whose qualifying requests all got the
// given status code. Clients are listed with the most requests first; see
// Tally.Exclusive and WriteReport for the details. The whole input is read
// before anything is produced, so if there is an error reading the pipe, the
// pipe's error status is set and no partial report is ever produced.
func (p *Pipe) ExclusiveStatus(code int) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	t, err := p.Tally()
	if err != nil {
		return p
	}
	output := strings.Builder{}
	// writing to a strings.Builder can't fail
	_ = WriteReport(&output, t.Exclusive(code))
	return p.pipeFrom(output.String())
}

// MatchEntries reads access log lines from the pipe, and returns a new pipe
// containing only the lines which parse as an Entry for which match returns
// true. Unparseable lines are dropped. If there is an error reading the pipe,
// the pipe's error status is also set.
func (p *Pipe) MatchEntries(match func(Entry) bool) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		e, ok := ParseEntry(line)
		if ok && match(e) {
			out.WriteString(line)
			out.WriteRune('\n')
		}
	})
}

// MatchRegexp reads from the pipe, and returns a new pipe containing only lines
// which match the specified compiled regular expression. If there is an error
// reading the pipe, the pipe's error status is also set.
func (p *Pipe) MatchRegexp(re *regexp.Regexp) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		if re.MatchString(line) {
			out.WriteString(line)
			out.WriteRune('\n')
		}
	})
}

// Qualifying reads access log lines from the pipe, and returns a new pipe
// containing only well-formed GET requests whose status is not 3xx or 5xx.
func (p *Pipe) Qualifying() *Pipe {
	return p.MatchEntries(Entry.Qualifies)
}

// RejectRegexp reads from the pipe, and returns a new pipe containing only
// lines which don't match the specified compiled regular expression. If there
// is an error reading the pipe, the pipe's error status is also set.
func (p *Pipe) RejectRegexp(re *regexp.Regexp) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		if !re.MatchString(line) {
			out.WriteString(line)
			out.WriteRune('\n')
		}
	})
}

// newScanner returns a line scanner over p with no practical limit on line
// length, since one overlong line must not abort a whole log.
func newScanner(p *Pipe) *bufio.Scanner {
	scanner := bufio.NewScanner(p)
	scanner.Buffer(make([]byte, 4096), math.MaxInt)
	return scanner
}
