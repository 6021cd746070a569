package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/terraformer/cmd/terraformer"
	"github.com/arthur-debert/terraformer/pkg/style"
)

func main() {
	rootCmd := terraformer.NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var shown *terraformer.ExitError
	if !errors.As(err, &shown) {
		// Usage and flag errors have not been printed yet
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintln(os.Stderr)
		_ = rootCmd.Usage()
	}
	os.Exit(terraformer.ExitCode(err))
}
