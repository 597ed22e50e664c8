//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Binary compiles the raytracer into bin/raytracer.
func (Build) Binary() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/raytracer", "."), withStream())
	return err
}

// Test runs every package's tests.
func (Build) Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
