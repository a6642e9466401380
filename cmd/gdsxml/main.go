// Command gdsxml validates documents against the record catalog and
// generates record packages from XSD schemas.
package main

import (
	"os"

	"github.com/jacoelho/gdsxml/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
