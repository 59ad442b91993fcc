package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/diffmask/cmd/diffmask"
	"github.com/arthur-debert/diffmask/internal/version"
)

func main() {
	rootCmd := diffmask.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DIFFMASK",
		Section: "8",
		Source:  "diffmask " + version.Version,
		Manual:  "diffmask manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
