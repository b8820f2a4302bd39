package main

import (
	"github.com/charmbracelet/log"

	"tableflip.dev/downloads/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatal("error during command execution", "err", err)
	}
}
