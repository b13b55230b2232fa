package check402

import (
	"io"
	"os"
	"strings"
)

// CountLines counts lines from the pipe's reader, and returns the integer
// result, or an error. If there is an error reading the pipe, the pipe's error
// status is also set.
func (p *Pipe) CountLines() (int, error) {
	var lines int
	p.EachLine(func(line string, out *strings.Builder) {
		lines++
	})
	return lines, p.Error()
}

// Slice returns the contents of the pipe as a slice of strings, one element
// per line, or an error. An empty pipe will produce an empty slice.
func (p *Pipe) Slice() ([]string, error) {
	var lines []string
	p.EachLine(func(line string, out *strings.Builder) {
		lines = append(lines, line)
	})
	if err := p.Error(); err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}

// Stdout writes the contents of the pipe to the pipe's standard output, which
// is os.Stdout unless changed with WithStdout. It returns the number of bytes
// successfully written, plus a non-nil error if the write failed or if there
// was an error reading from the pipe. If the pipe has error status, Stdout
// returns zero plus the existing error.
func (p *Pipe) Stdout() (int, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	output, err := p.String()
	if err != nil {
		return 0, err
	}
	w := p.stdout
	if w == nil {
		w = os.Stdout
	}
	return io.WriteString(w, output)
}

// String returns the contents of the Pipe as a string, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error
// status is also set.
func (p *Pipe) String() (string, error) {
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Tally reads access log lines from the pipe and returns a Tally of the
// qualifying requests, or an error. Lines that don't parse are skipped. If
// there is an error reading the pipe, the pipe's error status is also set.
func (p *Pipe) Tally() (*Tally, error) {
	t := NewTally()
	p.EachLine(func(line string, out *strings.Builder) {
		if e, ok := ParseEntry(line); ok {
			t.Add(e)
		}
	})
	return t, p.Error()
}
