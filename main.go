package main

import (
	"os"

	"github.com/rjalexa/phrasesplit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
