package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/terraformer/cmd/terraformer"
	"github.com/arthur-debert/terraformer/internal/version"
)

func main() {
	rootCmd := terraformer.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TERRAFORMER",
		Section: "1",
		Source:  "terraformer " + version.Version,
		Manual:  "terraformer manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
