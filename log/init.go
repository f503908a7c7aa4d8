package log

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}).
	Level(zerolog.InfoLevel).With().Timestamp().Logger()

const (
	defaultLogLevel = InfoLevel
	defaultLogPath  = "/data/logs"
	FileName        = "app.log"
	DebugLevel      = "debug"
	InfoLevel       = "info"
	WarnLevel       = "warn"
	ErrorLevel      = "error"
)

func Init(level, path string) {
	SetLevel(level)
	// log file
	if path == "" {
		path = defaultLogPath
	}
	logFile := GetFullLogPath(path, FileName)
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
	fileWriter, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("open log file failed: %s", err))
	}
	multi := zerolog.MultiLevelWriter(consoleWriter, fileWriter)
	logger = zerolog.New(multi).With().Timestamp().Logger()
}

// SetLevel changes the level without touching the writers.
func SetLevel(level string) {
	if level == "" {
		level = defaultLogLevel
	}
	var l zerolog.Level
	switch level {
	case DebugLevel:
		l = zerolog.DebugLevel
	case InfoLevel:
		l = zerolog.InfoLevel
	case WarnLevel:
		l = zerolog.WarnLevel
	case ErrorLevel:
		l = zerolog.ErrorLevel
	default:
		panic(fmt.Sprintf("unknown log level: %s", level))
	}
	zerolog.SetGlobalLevel(l)
	logger = logger.Level(l)
}

// Default returns the process logger. The pointer stays valid across
// Init, which replaces the logger in place.
func Default() *zerolog.Logger {
	return &logger
}

func GetFullLogPath(path, fileName string) string {
	if HasSuffix(path, "/") {
		return path + fileName
	}
	return path + "/" + fileName
}

func HasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
