// Command check402 reads a web server access log in Combined Log Format and
// lists the clients whose GET requests were all answered with 402 Payment
// Required, busiest first, with the user agents each one sent:
//
//	check402 /var/log/apache2/access.log
//
// Redirects (3xx) and server errors (5xx) are ignored, as are requests other
// than GET and lines that aren't in the expected format.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitfield/check402"
)

func main() {
	os.Exit(Main())
}

// Main runs the command with the process's arguments and returns its exit
// status.
func Main() int {
	name := programName()
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s /path/to/access.log\n", name)
		return 1
	}
	_, err := check402.File(os.Args[1]).ExclusiveStatus(http.StatusPaymentRequired).Stdout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	return 0
}

func programName() string {
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}
