package main

import (
	"os"

	"github.com/tellerdesk/tellerdesk/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
