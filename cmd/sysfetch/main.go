package main

import (
	"os"

	"sysfetch/internal/cli"
	"sysfetch/internal/logger"
	"sysfetch/internal/sysinfo"

	"golang.org/x/term"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	logger.InitLogger()

	app := &cli.App{
		Out:         os.Stdout,
		Collect:     sysinfo.NewCollector().Collect,
		ClearScreen: term.IsTerminal(int(os.Stdout.Fd())),
		Version:     version,
	}

	os.Exit(app.Run(os.Args[1:]))
}
