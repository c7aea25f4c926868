//go:build windows

// junction creates, inspects and removes NTFS junction points.
package main

import (
	"log"
	"os"
)

func main() {
	// Run() should not return an error because of ExitErrHandler, but just in case ...
	if err := app().Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}
