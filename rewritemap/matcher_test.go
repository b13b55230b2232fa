package rewritemap

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
)

var discard = log.New(io.Discard, "", 0)

func TestLiteral(t *testing.T) {
	t.Parallel()
	m := newLiteral([]string{"alpha", "beta"})
	if !m.Match("alpha") || !m.Match("beta") {
		t.Error("literal list failed to match existing entries")
	}
	if m.Match("gamma") || m.Match("ALPHA") || m.Match("alph") {
		t.Error("literal list matched non-existent entry")
	}
}

func TestPatterns(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		name    string
		m       patterns
		match   string
		noMatch string
	}{
		{
			name:    "case insensitive",
			m:       newPatterns([]string{"hello"}, true, discard),
			match:   "HeLLo, world",
			noMatch: "goodbye",
		},
		{
			name:    "case sensitive",
			m:       newPatterns([]string{"foo"}, false, discard),
			match:   "foo fighters",
			noMatch: "FOO",
		},
		{
			name:    "skips invalid",
			m:       newPatterns([]string{"fo+", "("}, false, discard),
			match:   "fooooo",
			noMatch: "bar",
		},
		{
			name:    "user agent",
			m:       newPatterns([]string{`^python-requests/`, `bot\b`}, true, discard),
			match:   "Mozilla/5.0 (compatible; AhrefsBot/7.0)",
			noMatch: "Mozilla/5.0 (X11; Linux x86_64)",
		},
	}
	for _, tc := range tcs {
		if !tc.m.Match(tc.match) {
			t.Errorf("%s: want %q to match", tc.name, tc.match)
		}
		if tc.m.Match(tc.noMatch) {
			t.Errorf("%s: want %q not to match", tc.name, tc.noMatch)
		}
	}
}

func TestPatternsLogsInvalidEntries(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	ps := newPatterns([]string{"(", "ok"}, false, log.New(buf, "", 0))
	if len(ps) != 1 {
		t.Errorf("want 1 compiled pattern, got %d", len(ps))
	}
	if !strings.Contains(buf.String(), `skipping invalid regex "("`) {
		t.Errorf("want invalid regex logged, got %q", buf.String())
	}
}

func TestNetworks(t *testing.T) {
	t.Parallel()
	m := newNetworks([]string{
		"192.0.2.1",
		"198.51.100.0/24",
		"2001:db8::/48",
		"2001:0db8:0001::0001",
		"not-an-ip",
		"203.0.113.0/33", // invalid CIDR
	}, discard)
	tcs := []struct {
		input string
		want  bool
	}{
		{"192.0.2.1", true},
		{"192.0.2.2", false},
		{"198.51.100.25", true},
		{" 198.51.100.200 ", true},
		{"2001:db8::1234", true},
		{"2001:db8:1::1", true},
		{"203.0.113.12", false},
		{"not-an-ip", false},
		{"", false},
	}
	for _, tc := range tcs {
		if got := m.Match(tc.input); got != tc.want {
			t.Errorf("%q: want %t, got %t", tc.input, tc.want, got)
		}
	}
}

func TestNever(t *testing.T) {
	t.Parallel()
	if (never{}).Match("anything") {
		t.Error("never matched")
	}
}
