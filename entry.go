package check402

import (
	"net/http"
	"regexp"
	"strconv"
)

// Entry is one request from an access log in Combined Log Format.
type Entry struct {
	IP        string
	Time      string
	Method    string
	Path      string
	Protocol  string // version after "HTTP/", such as "1.1"
	Status    int
	Size      string
	Referrer  string
	UserAgent string
}

// entryPattern matches from the start of a line only; anything after the
// quoted user agent is ignored.
var entryPattern = regexp.MustCompile(`^(?P<ip>\S+) \S+ \S+ \[(?P<time>.*?)\] ` +
	`"(?P<method>\S+) (?P<path>[^"]*) HTTP/(?P<protocol>[^"]+)" ` +
	`(?P<status>\d{3}) (?P<size>\S+) "(?P<referrer>[^"]*)" "(?P<ua>[^"]*)"`)

var (
	ipIndex       = entryPattern.SubexpIndex("ip")
	timeIndex     = entryPattern.SubexpIndex("time")
	methodIndex   = entryPattern.SubexpIndex("method")
	pathIndex     = entryPattern.SubexpIndex("path")
	protocolIndex = entryPattern.SubexpIndex("protocol")
	statusIndex   = entryPattern.SubexpIndex("status")
	sizeIndex     = entryPattern.SubexpIndex("size")
	referrerIndex = entryPattern.SubexpIndex("referrer")
	uaIndex       = entryPattern.SubexpIndex("ua")
)

// ParseEntry extracts an Entry from a single log line. It reports false if the
// line isn't in the expected format.
func ParseEntry(line string) (Entry, bool) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	status, err := strconv.Atoi(m[statusIndex])
	if err != nil {
		// \d{3} only admits ASCII digits, so this can't happen.
		return Entry{}, false
	}
	return Entry{
		IP:        m[ipIndex],
		Time:      m[timeIndex],
		Method:    m[methodIndex],
		Path:      m[pathIndex],
		Protocol:  m[protocolIndex],
		Status:    status,
		Size:      m[sizeIndex],
		Referrer:  m[referrerIndex],
		UserAgent: m[uaIndex],
	}, true
}

// Qualifies reports whether e counts towards a client's tally: it must be a
// GET request whose status is neither a redirect (3xx) nor a server error
// (5xx).
func (e Entry) Qualifies() bool {
	if e.Method != http.MethodGet {
		return false
	}
	switch {
	case e.Status >= 300 && e.Status < 400:
		return false
	case e.Status >= 500 && e.Status < 600:
		return false
	}
	return true
}
