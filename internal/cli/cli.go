// Package cli dispatches the command line to help, version or the report.
package cli

import (
	"fmt"
	"io"

	"sysfetch/internal/format"
	"sysfetch/internal/logger"
	"sysfetch/internal/report"
	"sysfetch/internal/sysinfo"
)

const Name = "sysfetch"

const usage = `Usage: ` + Name + ` [OPTION]

Print a short report about this system.

Options:
  -h, --help       print this help and exit
  -v, --version    print version information and exit
`

type App struct {
	Out         io.Writer
	Collect     func() *sysinfo.Snapshot
	ClearScreen bool
	Version     string
}

// Run handles args (without the program name) and returns the exit code.
// Only a single argument is treated as a flag; any other count prints the
// report.
func (a *App) Run(args []string) int {
	if len(args) == 1 {
		switch arg := args[0]; arg {
		case "-h", "--help":
			return a.print(usage)
		case "-v", "--version":
			return a.print(fmt.Sprintf("%s %s\n", Name, a.Version))
		default:
			logger.CLI.Debug().Str("arg", arg).Msg("Unknown flag")
			return a.print(fmt.Sprintf("Unknown flag: %s\n", arg))
		}
	}
	return a.report()
}

func (a *App) report() int {
	if a.ClearScreen {
		if _, err := io.WriteString(a.Out, format.ClearScreen); err != nil {
			return a.failed(err)
		}
	}

	lines := report.Build(a.Collect())
	if err := report.Write(a.Out, lines); err != nil {
		return a.failed(err)
	}
	return a.print("\n")
}

func (a *App) print(s string) int {
	if _, err := io.WriteString(a.Out, s); err != nil {
		return a.failed(err)
	}
	return 0
}

// failed covers a broken stdout; there is nobody left to show the report to.
func (a *App) failed(err error) int {
	logger.CLI.Error().Err(err).Msg("Failed to write output")
	return 1
}
