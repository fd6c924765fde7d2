package main

import (
	"os"

	"github.com/tracker-tv/actions-lint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
