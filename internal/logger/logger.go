package logger

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// Component loggers. They stay disabled until InitLogger runs, so
	// packages can log from tests without any setup.
	Main     = zerolog.Nop()
	CLI      = zerolog.Nop()
	SysInfo  = zerolog.Nop()
	NetProbe = zerolog.Nop()
	Report   = zerolog.Nop()
	Tools    = zerolog.Nop()
	MCP      = zerolog.Nop()
)

// InitLogger configures the component loggers from LOG_LEVEL and ENV.
// Output always goes to stderr: stdout carries the report or the MCP stream.
func InitLogger() {
	Init(os.Stderr)
}

// Init is InitLogger with an explicit destination.
func Init(out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return file + ":" + strconv.Itoa(line)
	}

	level := getLogLevel()
	zerolog.SetGlobalLevel(level)

	if isDevelopmentMode() {
		writer := zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
		writer.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(i.(string))
		}
		log.Logger = zerolog.New(writer).With().Timestamp().Caller().Logger()
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Caller().Logger()
	}

	Main = component("main")
	CLI = component("cli")
	SysInfo = component("sysinfo")
	NetProbe = component("netprobe")
	Report = component("report")
	Tools = component("tools")
	MCP = component("mcp")

	Main.Debug().
		Str("level", level.String()).
		Bool("development", isDevelopmentMode()).
		Msg("Logger initialized")
}

func component(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}

// getLogLevel maps LOG_LEVEL to a zerolog level. A fetch tool prints its
// report on every run, so the default stays at warn.
func getLogLevel() zerolog.Level {
	levelStr := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	switch levelStr {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning", "":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// isDevelopmentMode reports whether ENVIRONMENT (or ENV) selects dev output.
func isDevelopmentMode() bool {
	env := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if env == "" {
		env = strings.ToLower(os.Getenv("ENV"))
	}
	return env == "development" || env == "dev" || env == ""
}

// GetToolLogger returns a logger for one MCP tool invocation.
func GetToolLogger(tool, format string) zerolog.Logger {
	return Tools.With().
		Str("tool", tool).
		Str("format", format).
		Logger()
}
