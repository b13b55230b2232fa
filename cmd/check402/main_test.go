package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"check402": Main,
	}))
}

func TestScript(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}

func TestMainReturnsOneOnWrongArgumentCount(t *testing.T) {
	args := os.Args
	defer func() { os.Args = args }()
	for _, argv := range [][]string{
		{"check402"},
		{"check402", "a.log", "b.log"},
	} {
		os.Args = argv
		if got := Main(); got != 1 {
			t.Errorf("%q: want exit status 1, got %d", argv, got)
		}
	}
}
