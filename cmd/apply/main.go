// Command apply is a terminal front end for the careers workflow: browse
// job postings, inspect interview slots and submit an application.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
