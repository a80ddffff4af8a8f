//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/hsiuhsiu/popdb-go/internal/loader"
	"github.com/hsiuhsiu/popdb-go/internal/styles"
)

// libDir is where Native places the shared library.
const libDir = "lib"

func version() string {
	if v := os.Getenv("POPDB_VERSION"); v != "" {
		return v
	}
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || strings.TrimSpace(out) == "" {
		return "v0.0.0-dev"
	}
	return strings.TrimSpace(out)
}

// Native builds cmd/libpopdb as a C shared library named for the host OS.
func Native() error {
	out := loader.ResolveFilename(runtime.GOOS, libDir, loader.DefaultBase)
	fmt.Println(styles.Label("Building"), out)

	if err := os.MkdirAll(libDir, 0o755); err != nil {
		return err
	}
	ldflags := "-X main.Version=" + version()
	env := map[string]string{"CGO_ENABLED": "1"}
	if err := sh.RunWithV(env, "go", "build", "-buildmode=c-shared", "-ldflags", ldflags, "-o", out, "./cmd/libpopdb"); err != nil {
		return fmt.Errorf("%s build failed: %v", styles.Error("Error:"), err)
	}
	fmt.Println(styles.Success("built " + out))
	return nil
}

// Build builds the popdb CLI into bin/.
func Build() error {
	ldflags := "-X github.com/hsiuhsiu/popdb-go/pkg/popdb.Version=" + version()
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", filepath.Join("bin", "popdb"), "./cmd/popdb")
}

// Test runs all tests. The native conformance tests are skipped.
func Test() error {
	fmt.Println(styles.Label("Running tests..."))
	if err := sh.RunV("go", "test", "./...", "-count=1"); err != nil {
		return fmt.Errorf("%s tests failed: %v", styles.Error("Error:"), err)
	}
	fmt.Println(styles.Success("All tests passed"))
	return nil
}

// TestNative builds the shared library and runs all tests against it.
func TestNative() error {
	mg.Deps(Native)

	dir, err := filepath.Abs(libDir)
	if err != nil {
		return err
	}
	env := map[string]string{"POPDB_LIB_DIR": dir}
	if err := sh.RunWithV(env, "go", "test", "./...", "-count=1"); err != nil {
		return fmt.Errorf("%s native tests failed: %v", styles.Error("Error:"), err)
	}
	fmt.Println(styles.Success("Native tests passed"))
	return nil
}

// Demo builds the shared library and runs the demo against it. Prints 666.
func Demo() error {
	mg.Deps(Native)
	return sh.RunV("go", "run", "./cmd/popdb", "--lib-dir", libDir, "demo")
}

// Format runs gofmt on all Go files in the project
func Format() error {
	return sh.RunV("gofmt", "-s", "-w", ".")
}

// CI runs format, the native build and the full test suite.
func CI() error {
	mg.SerialDeps(Format, TestNative)
	fmt.Println(styles.Success("CI pipeline completed"))
	return nil
}

// Clean removes build output.
func Clean() error {
	for _, dir := range []string{libDir, "bin"} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}
