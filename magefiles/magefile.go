//go:build mage

// Package main provides build targets for terraformer using Mage.
//
// Usage:
//
//	mage build        Compile the terraformer binary to bin/
//	mage test         Run all tests
//	mage testRace     Run all tests with the race detector
//	mage lint         Run golangci-lint
//	mage docs         Write completions and the man page to bin/
//	mage clean        Remove build artifacts
//	mage install      Install terraformer to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName    = "terraformer"
	binaryDir     = "bin"
	cmdDir        = "./cmd/terraformer/main"
	completionDir = "./cmd/terraformer-completions"
	manpageDir    = "./cmd/terraformer-manpage"
	versionPkg    = "github.com/arthur-debert/terraformer/internal/version"
)

// Build compiles the terraformer binary to bin/ with version information.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestRace runs all tests with the race detector.
func TestRace() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Docs writes shell completions and the man page to bin/.
func Docs() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	for _, shell := range []string{"bash", "zsh", "fish"} {
		out, err := sh.Output("go", "run", completionDir, shell)
		if err != nil {
			return fmt.Errorf("%s completion: %w", shell, err)
		}
		path := filepath.Join(binaryDir, binaryName+"."+shell)
		if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
			return err
		}
	}

	man, err := sh.Output("go", "run", manpageDir)
	if err != nil {
		return fmt.Errorf("man page: %w", err)
	}
	return os.WriteFile(filepath.Join(binaryDir, binaryName+".1"), []byte(man+"\n"), 0o644)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// ldflags stamps the version package from git, falling back to dev values
// outside a work tree.
func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || commit == "" {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	return strings.Join([]string{
		"-s", "-w",
		fmt.Sprintf("-X %s.Version=%s", versionPkg, version),
		fmt.Sprintf("-X %s.Commit=%s", versionPkg, commit),
		fmt.Sprintf("-X %s.Date=%s", versionPkg, date),
	}, " ")
}
