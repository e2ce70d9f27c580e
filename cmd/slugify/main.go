package main

import (
	"os"

	"github.com/dmitrymomot/slugify/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
