package main

import (
	"os"
)

func main() {
	if err := newRootCommand(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
