//go:build mage

// Package main holds the mage targets for developing cpp-extension-go.
package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default is the target run when mage is invoked without arguments.
var Default = Test

// Test runs the package tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Build compiles the cppext CLI.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/cppext", "./cmd/cppext")
}

// Lint runs go vet across the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// CI runs the full verification pipeline.
func CI() {
	mg.SerialDeps(Lint, Test, Build)
}
