//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the unit tests with the unrolled lanes backend.
func (Test) Unrolled() error {
	_, err := executeCmd("go", withArgs("test", "-tags", unrolledTag, "./..."), withStream())
	return err
}

// Runs the unit tests with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Runs both backends.
func (Test) All() {
	mg.SerialDeps(Test.Unit, Test.Unrolled)
}

type Bench mg.Namespace

// Runs the go benchmarks of the math package.
func (Bench) Loop() error {
	return goBench()
}

// Runs the go benchmarks of the math package with the unrolled backend.
func (Bench) Unrolled() error {
	return goBench("-tags", unrolledTag)
}
