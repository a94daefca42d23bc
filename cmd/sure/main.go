// Command sure runs the contracts of the bundled example packages.
//
// Projects embedding sure build their own binary the same way, passing a
// loader over a registry of their classes to cli.Main.
package main

import (
	"os"

	"github.com/roach88/sure/internal/cli"
	"github.com/roach88/sure/internal/engine"
	"github.com/roach88/sure/internal/examples"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], engine.RegistryLoader(examples.Registry()), os.Stdout, os.Stderr))
}
