// Package common provides shared constants, types, and utilities
// used across the Action Center application.
package common

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel converts a level name such as "debug" or "warning" to a LogLevel.
func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level %q (must be debug, info, warn or error)", name)
	}
}

// AppLogger is a leveled logger writing to stdout and, optionally, to a
// size-rotated file.
type AppLogger struct {
	mu          sync.Mutex
	level       LogLevel
	logger      *log.Logger
	output      io.Writer
	logFile     *os.File
	filePath    string
	maxFileSize int64
	maxBackups  int
}

// LogConfig holds configuration options for the logger.
type LogConfig struct {
	Level       LogLevel
	EnableFile  bool
	MaxFileSize int64 // bytes, default 2MB
	MaxBackups  int   // rotated files to keep, default 3
}

var (
	defaultLogger *AppLogger
	loggerOnce    sync.Once
)

const (
	defaultMaxFileSize = 2 * 1024 * 1024
	defaultMaxBackups  = 3
)

// defaultAppLogger returns the process-wide logger.
func defaultAppLogger() *AppLogger {
	loggerOnce.Do(func() {
		defaultLogger = &AppLogger{
			level:       LevelInfo,
			output:      os.Stdout,
			logger:      log.New(os.Stdout, "", 0),
			maxFileSize: defaultMaxFileSize,
			maxBackups:  defaultMaxBackups,
		}
	})
	return defaultLogger
}

// InitLogger applies config to the process-wide logger.
// Call it once, early in main.
func InitLogger(config LogConfig) error {
	logger := defaultAppLogger()
	logger.SetLevel(config.Level)

	if config.MaxFileSize > 0 {
		logger.maxFileSize = config.MaxFileSize
	}
	if config.MaxBackups > 0 {
		logger.maxBackups = config.MaxBackups
	}

	if !config.EnableFile {
		return nil
	}
	return logger.OpenFile(filepath.Join(GetLogDir(), LogFileName))
}

// SetLevel sets the minimum log level.
func (l *AppLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}


// OpenFile tees log output into path, rotating it first if it is too big.
func (l *AppLogger) OpenFile(path string) error {
	dir := filepath.Dir(path)
	if isSymlink(dir) || isSymlink(path) {
		return fmt.Errorf("refusing to log through symlink %s", path)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	l.rotateIfNeeded(path)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		l.logFile.Close()
	}
	l.logFile = file
	l.filePath = path
	l.output = io.MultiWriter(os.Stdout, file)
	l.logger = log.New(l.output, "", 0)
	return nil
}

func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// rotateIfNeeded gzips path into a timestamped backup once it reaches
// maxFileSize and prunes backups beyond maxBackups.
func (l *AppLogger) rotateIfNeeded(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() < l.maxFileSize {
		return
	}

	l.mu.Lock()
	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}
	l.mu.Unlock()

	backup := fmt.Sprintf("%s.%s.gz", path, time.Now().Format("20060102-150405"))
	if err := gzipFile(path, backup); err != nil {
		os.Rename(path, strings.TrimSuffix(backup, ".gz"))
	} else {
		os.Remove(path)
	}

	l.pruneBackups(path)
}

func gzipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func (l *AppLogger) pruneBackups(path string) {
	backups, err := filepath.Glob(path + ".*")
	if err != nil || len(backups) <= l.maxBackups {
		return
	}

	modTime := func(p string) time.Time {
		info, err := os.Stat(p)
		if err != nil {
			return time.Time{}
		}
		return info.ModTime()
	}
	sort.Slice(backups, func(i, j int) bool {
		return modTime(backups[i]).Before(modTime(backups[j]))
	})

	for _, old := range backups[:len(backups)-l.maxBackups] {
		os.Remove(old)
	}
}

// GetLogDir returns the log directory path.
func GetLogDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ConfigDirName, "logs")
	}
	return filepath.Join(homeDir, ".config", ConfigDirName, "logs")
}

func (l *AppLogger) log(level LogLevel, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	caller := "???"
	if _, file, line, ok := runtime.Caller(3); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.logger.Printf("%s [%s] %s: %s", time.Now().Format("2006/01/02 15:04:05"), level, caller, msg)
}

// Debug logs a debug message.
func (l *AppLogger) Debug(msg string, args ...interface{}) { l.logf(LevelDebug, msg, args...) }

// Info logs an informational message.
func (l *AppLogger) Info(msg string, args ...interface{}) { l.logf(LevelInfo, msg, args...) }

// Warn logs a warning message.
func (l *AppLogger) Warn(msg string, args ...interface{}) { l.logf(LevelWarn, msg, args...) }

// Error logs an error message.
func (l *AppLogger) Error(msg string, args ...interface{}) { l.logf(LevelError, msg, args...) }

// logf keeps the call depth identical for methods and package helpers.
func (l *AppLogger) logf(level LogLevel, msg string, args ...interface{}) {
	l.log(level, msg, args...)
}

// LogDebug logs a debug message to the default logger.
func LogDebug(msg string, args ...interface{}) { defaultAppLogger().logf(LevelDebug, msg, args...) }

// LogInfo logs an info message to the default logger.
func LogInfo(msg string, args ...interface{}) { defaultAppLogger().logf(LevelInfo, msg, args...) }

// LogWarn logs a warning message to the default logger.
func LogWarn(msg string, args ...interface{}) { defaultAppLogger().logf(LevelWarn, msg, args...) }

// LogError logs an error message to the default logger.
func LogError(msg string, args ...interface{}) { defaultAppLogger().logf(LevelError, msg, args...) }

// Close closes the log file. Call it on shutdown.
func (l *AppLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	l.output = os.Stdout
	l.logger = log.New(os.Stdout, "", 0)
	return err
}

// CloseLogger closes the default logger.
func CloseLogger() error {
	return defaultAppLogger().Close()
}
