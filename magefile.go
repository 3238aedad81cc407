//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"codeberg.org/snonux/define/internal"
)

const binary = "define"

var Default = Build

// Build compiles the define binary
func Build() error {
	fmt.Printf("Building %s %s\n", binary, internal.Version)
	return sh.RunV("go", "build", "-ldflags", "-s -w", "-o", binary, "./cmd/define")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Install copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dest := filepath.Join(home, "go", "bin", binary)
	fmt.Println("Installing to", dest)
	return sh.Copy(dest, binary)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
