package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errInvalid) {
			os.Exit(exitInvalid)
		}
		fmt.Fprintln(os.Stderr, "goform:", err)
		os.Exit(exitError)
	}
	os.Exit(exitOK)
}
