//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Preview renders a fast, low sample count image of the random spheres scene.
func (Run) Preview() error {
	mg.Deps(Build.Binary)
	_, err := executeCmd("bin/raytracer",
		withArgs("-scene", "random-spheres", "-samples", "10", "-out", "output/preview.png"),
		withStream())
	return err
}

// Final renders the random spheres scene with its full sample budget.
func (Run) Final() error {
	mg.Deps(Build.Binary)
	_, err := executeCmd("bin/raytracer", withArgs("-scene", "random-spheres", "-out", "output/image.ppm"), withStream())
	return err
}
