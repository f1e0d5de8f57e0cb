package main

import (
	"os"

	"github.com/orgball2608/social-media-reader/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
