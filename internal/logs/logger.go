package logs

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFileName = "debug.log"

var (
	// Logger discards everything until Initialize points it at a file. The
	// terminal belongs to the menu, so nothing is ever logged to stdout.
	Logger  = zap.NewNop().Sugar()
	level   = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize (re)points the logger at debug.log inside logDir. It swaps
// Logger, so it must run before any other goroutine logs.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, logFileName)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger.Errorw("failed to open log file", "path", logPath, "error", err)
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), level)

	_ = Logger.Sync()
	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = zap.New(core, zap.AddCaller()).Named("memo").Sugar()
	Logger.Infow("logger initialized", "path", logPath)

	return nil
}

// Close flushes and closes the log file. Logger stays in place but drops
// every entry from then on, so late handler goroutines can still call it.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	level.SetLevel(zapcore.InvalidLevel)
	_ = Logger.Sync()
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
