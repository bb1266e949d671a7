// Command bloch converts a single qubit state between its Bloch sphere
// representations.
package main

import "github.com/theapemachine/bloch/internal/cli"

func main() {
	cli.Execute(cli.NewRootCommand())
}
