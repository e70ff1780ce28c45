package main

import (
	"os"

	"github.com/gpg-rs/libgpg-error/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
