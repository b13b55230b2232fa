package rewritemap

import (
	"log"
	"net"
	"regexp"
	"strings"
)

// Matcher reports whether a lookup value is present in a list.
type Matcher interface {
	Match(string) bool
}

// never matches nothing. It stands in for a list file that doesn't exist.
type never struct{}

func (never) Match(string) bool { return false }

type literal map[string]struct{}

func newLiteral(entries []string) literal {
	l := make(literal, len(entries))
	for _, e := range entries {
		l[e] = struct{}{}
	}
	return l
}

func (l literal) Match(s string) bool {
	_, ok := l[s]
	return ok
}

type patterns []*regexp.Regexp

// newPatterns compiles each entry as an unanchored regular expression,
// logging and skipping any that don't compile.
func newPatterns(entries []string, ignoreCase bool, logger *log.Logger) patterns {
	ps := make(patterns, 0, len(entries))
	for _, e := range entries {
		expr := e
		if ignoreCase {
			expr = "(?i)" + e
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			logger.Printf("skipping invalid regex %q: %v", e, err)
			continue
		}
		ps = append(ps, re)
	}
	return ps
}

func (ps patterns) Match(s string) bool {
	for _, re := range ps {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

type networks struct {
	exact map[string]struct{}
	nets  []*net.IPNet
}

// newNetworks accepts single addresses and CIDR blocks, logging and skipping
// anything else.
func newNetworks(entries []string, logger *log.Logger) networks {
	n := networks{exact: map[string]struct{}{}}
	for _, e := range entries {
		if strings.Contains(e, "/") {
			_, cidr, err := net.ParseCIDR(e)
			if err != nil {
				logger.Printf("skipping invalid CIDR %q: %v", e, err)
				continue
			}
			n.nets = append(n.nets, cidr)
			continue
		}
		ip := net.ParseIP(e)
		if ip == nil {
			logger.Printf("skipping invalid IP %q", e)
			continue
		}
		n.exact[ip.String()] = struct{}{}
	}
	return n
}

func (n networks) Match(s string) bool {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return false
	}
	if _, ok := n.exact[ip.String()]; ok {
		return true
	}
	for _, cidr := range n.nets {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}
