// Command atomlevels enumerates atomic configurations and term symbols.
package main

import (
	"os"

	"github.com/katalvlaran/atomlevels/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
