package check402

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEntry(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		name string
		line string
		want Entry
	}{
		{
			name: "combined log format",
			line: `212.205.21.11 - frank [30/Jun/2019:17:06:15 +0000] "GET /index.html HTTP/1.1" 402 2028 "https://example.com/" "Mozilla/5.0 (Linux; Android 8.0.0)"`,
			want: Entry{
				IP:        "212.205.21.11",
				Time:      "30/Jun/2019:17:06:15 +0000",
				Method:    "GET",
				Path:      "/index.html",
				Protocol:  "1.1",
				Status:    402,
				Size:      "2028",
				Referrer:  "https://example.com/",
				UserAgent: "Mozilla/5.0 (Linux; Android 8.0.0)",
			},
		},
		{
			name: "trailing fields ignored",
			line: `::1 - - [10/Oct/2023:00:00:00] "HEAD / HTTP/2.0" 200 - "-" "curl/8.4.0" rt=0.002 host="example.com"`,
			want: Entry{
				IP:        "::1",
				Time:      "10/Oct/2023:00:00:00",
				Method:    "HEAD",
				Path:      "/",
				Protocol:  "2.0",
				Status:    200,
				Size:      "-",
				Referrer:  "-",
				UserAgent: "curl/8.4.0",
			},
		},
		{
			name: "path with spaces and empty user agent",
			line: `1.2.3.4 - - [10/Oct/2023:00:00:00] "GET /a b c HTTP/1.0" 404 0 "" ""`,
			want: Entry{
				IP:       "1.2.3.4",
				Time:     "10/Oct/2023:00:00:00",
				Method:   "GET",
				Path:     "/a b c",
				Protocol: "1.0",
				Status:   404,
				Size:     "0",
			},
		},
	}
	for _, tc := range tcs {
		got, ok := ParseEntry(tc.line)
		if !ok {
			t.Errorf("%s: want line to parse, but it didn't: %q", tc.name, tc.line)
			continue
		}
		if !cmp.Equal(tc.want, got) {
			t.Errorf("%s: %s", tc.name, cmp.Diff(tc.want, got))
		}
	}
}

func TestParseEntryRejectsMalformedLines(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		name string
		line string
	}{
		{"empty", ``},
		{"plain text", `this line is not a log entry`},
		{"leading space", ` 1.2.3.4 - - [10/Oct/2023:00:00:00] "GET /a HTTP/1.1" 402 10 "-" "UA1"`},
		{"non-numeric status", `1.2.3.4 - - [10/Oct/2023:00:00:00] "GET /a HTTP/1.1" abc 10 "-" "UA1"`},
		{"four-digit status", `1.2.3.4 - - [10/Oct/2023:00:00:00] "GET /a HTTP/1.1" 4020 10 "-" "UA1"`},
		{"non-ASCII digits", `1.2.3.4 - - [10/Oct/2023:00:00:00] "GET /a HTTP/1.1" ٤٠٢ 10 "-" "UA1"`},
		{"missing user agent", `1.2.3.4 - - [10/Oct/2023:00:00:00] "GET /a HTTP/1.1" 402 10 "-"`},
		{"unterminated user agent", `1.2.3.4 - - [10/Oct/2023:00:00:00] "GET /a HTTP/1.1" 402 10 "-" "UA1`},
		{"missing protocol", `1.2.3.4 - - [10/Oct/2023:00:00:00] "GET /a" 402 10 "-" "UA1"`},
		{"common log format", `1.2.3.4 - - [10/Oct/2023:00:00:00] "GET /a HTTP/1.1" 402 10`},
		{"truncated", `1.2.3.4 - - [10/Oct/2023:00:0`},
	}
	for _, tc := range tcs {
		if e, ok := ParseEntry(tc.line); ok {
			t.Errorf("%s: want no match, got %+v", tc.name, e)
		}
	}
}

func TestQualifies(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		method string
		status int
		want   bool
	}{
		{"GET", 402, true},
		{"GET", 200, true},
		{"GET", 404, true},
		{"GET", 299, true},
		{"GET", 300, false},
		{"GET", 301, false},
		{"GET", 399, false},
		{"GET", 400, true},
		{"GET", 499, true},
		{"GET", 500, false},
		{"GET", 503, false},
		{"GET", 599, false},
		{"GET", 600, true},
		{"GET", 100, true},
		{"POST", 402, false},
		{"HEAD", 200, false},
		{"get", 402, false},
	}
	for _, tc := range tcs {
		got := Entry{Method: tc.method, Status: tc.status}.Qualifies()
		if got != tc.want {
			t.Errorf("%s %d: want %t, got %t", tc.method, tc.status, tc.want, got)
		}
	}
}
