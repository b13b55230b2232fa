// Command rewritemap is an Apache RewriteMap program that checks values
// against lists kept in files, so that a server can block or allow the
// clients reported by check402:
//
//	RewriteMap lists "prg:/usr/local/bin/rewritemap /etc/apache2/lists"
//	RewriteCond ${lists:clients.net.list;%{REMOTE_ADDR}} =FOUND
//	RewriteRule ^ - [F]
//
// Lists are read from the directory given as the only argument, or else from
// the directory containing the executable. Logs go to standard error, since
// standard output carries the answers.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/bitfield/check402/rewritemap"
)

func main() {
	os.Exit(Main())
}

// Main runs the command with the process's arguments and returns its exit
// status.
func Main() int {
	logger := log.New(os.Stderr, "[rewrite-map] ", log.LstdFlags|log.Lmsgprefix)
	if len(os.Args) > 2 {
		logger.Printf("usage: %s [LIST_DIR]", filepath.Base(os.Args[0]))
		return 1
	}
	dir, err := listDir()
	if err != nil {
		logger.Printf("cannot determine executable dir: %v", err)
		return 1
	}
	err = rewritemap.NewDirectory(dir, logger).Serve(os.Stdin, os.Stdout)
	if err != nil {
		logger.Printf("error reading stdin: %v", err)
		return 1
	}
	return 0
}

func listDir() (string, error) {
	if len(os.Args) == 2 {
		return os.Args[1], nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
