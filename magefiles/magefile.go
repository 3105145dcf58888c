//go:build mage

// Package main contains Mage build targets for the doctools binaries.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binDir = "bin"

// binaries lists the commands under cmd/ that Build compiles.
var binaries = []string{"dirnav", "md2pdf", "mergepdf"}

// externalTools are the programs the binaries shell out to at run time.
var externalTools = []string{"typst", "qpdf", "gs"}

// version is stamped into every binary; override with VERSION.
func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// Build compiles dirnav, md2pdf and mergepdf into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	ldflags := "-X main.version=" + version()
	for _, name := range binaries {
		out := filepath.Join(binDir, name)
		if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, "./cmd/"+name); err != nil {
			return fmt.Errorf("go build %s: %w", name, err)
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests after vet.
func Test() error {
	mg.Deps(Vet)
	return sh.RunV("go", "test", "./...")
}

// Install copies the binaries into GOBIN (or GOPATH/bin).
func Install() error {
	mg.Deps(Test)
	ldflags := "-X main.version=" + version()
	for _, name := range binaries {
		if err := sh.RunV("go", "install", "-ldflags", ldflags, "./cmd/"+name); err != nil {
			return fmt.Errorf("go install %s: %w", name, err)
		}
	}
	return nil
}

// Tools reports which external programs are on PATH.
func Tools() {
	for _, tool := range externalTools {
		if path, err := exec.LookPath(tool); err == nil {
			fmt.Printf("  %-6s %s\n", tool, path)
		} else {
			fmt.Printf("  %-6s missing\n", tool)
		}
	}
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
