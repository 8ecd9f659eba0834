package main

import (
	"os"

	"github.com/upped-events/relkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
