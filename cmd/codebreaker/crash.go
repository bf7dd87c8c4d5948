package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// crashScreen is restored by handleCrash; set once before any goroutine starts
var crashScreen tcell.Screen

// handleCrash resets the terminal, prints the panic with its stack and exits
func handleCrash(r any) {
	if r == nil {
		return
	}

	if crashScreen != nil {
		crashScreen.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCODEBREAKER CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// goSafe runs fn in a goroutine that routes panics through handleCrash
func goSafe(fn func()) {
	go func() {
		defer func() {
			handleCrash(recover())
		}()
		fn()
	}()
}
