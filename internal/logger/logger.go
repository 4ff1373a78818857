package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger. It stays nil until Init runs, and the
// package helpers are no-ops until then.
var Logger *log.Logger

// Config holds logger configuration.
type Config struct {
	Debug   bool
	DataDir string
}

// LogFile returns the path of the rotating log file under dataDir.
func LogFile(dataDir string) string {
	return filepath.Join(dataDir, "logs", "phasewise.log")
}

// Init creates the log directory and points Logger at a rotating file.
// Debug mode lowers the level to debug and mirrors output to stderr.
func Init(cfg Config) error {
	path := LogFile(cfg.DataDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var w io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	level := log.InfoLevel
	if cfg.Debug {
		w = io.MultiWriter(os.Stderr, w)
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "phasewise",
	})
	return nil
}

// Or returns Logger, or a logger that discards everything before Init.
func Or() *log.Logger {
	if Logger != nil {
		return Logger
	}
	return log.New(io.Discard)
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
