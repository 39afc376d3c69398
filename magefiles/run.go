//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

const unrolledTag = "gamemath_unrolled"

type Run mg.Namespace

// Runs the benchmark driver. Set GAMEMATH_CONFIG to pass a TOML file.
func (Run) Suite() error {
	fmt.Println("Run suite...")
	args := []string{"run", "main.go"}
	if path := os.Getenv("GAMEMATH_CONFIG"); path != "" {
		args = append(args, "-config", path)
	}
	_, err := executeCmd("go", withArgs(args...), withStream())
	return err
}

// Runs the benchmark driver and re-runs it whenever GAMEMATH_CONFIG changes.
func (Run) Watch() error {
	path := os.Getenv("GAMEMATH_CONFIG")
	if path == "" {
		return fmt.Errorf("GAMEMATH_CONFIG must point at a TOML file")
	}
	_, err := executeCmd("go", withArgs("run", "main.go", "-config", path, "-watch"), withStream())
	return err
}

func goBench(extra ...string) error {
	args := append([]string{"test"}, extra...)
	args = append(args, "-run", "^$", "-bench", ".", "./...")
	_, err := executeCmd("go", withArgs(args...), withDir("engine/math"), withStream())
	return err
}
