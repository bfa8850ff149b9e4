package main

import (
	"log/slog"
	"os"

	"mycolab/cmd/mycolabctl/commands"
	"mycolab/pkg/logging"
)

func main() {
	logging.Init(os.Getenv("LOG_LEVEL"))
	if err := commands.NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
