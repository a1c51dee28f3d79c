package main

import (
	"os"

	"github.com/commitcheck/commitcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
