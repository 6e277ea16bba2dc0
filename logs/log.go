package logs

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// 定义日志级别常量（数值越大，级别越高）
const (
	LevelTrace   = iota // 0（最低，最详细）
	LevelDebug          // 1
	LevelVerbose        // 2
	LevelInfo           // 3
	LevelWarning        // 4
	LevelError          // 5（最高，最严重）
)

var levelNames = map[string]int{
	"trace":   LevelTrace,
	"debug":   LevelDebug,
	"verbose": LevelVerbose,
	"info":    LevelInfo,
	"warn":    LevelWarning,
	"warning": LevelWarning,
	"error":   LevelError,
}

var logLevel atomic.Int32 // 全局日志级别

// 全局 Logger 实例
var logger atomic.Pointer[Logger]

// Logger 结构体
type Logger struct {
	traceLogger   *log.Logger
	debugLogger   *log.Logger
	verboseLogger *log.Logger
	infoLogger    *log.Logger
	warnLogger    *log.Logger
	errorLogger   *log.Logger
}

const flags = log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile

func newLogger(out, errOut io.Writer) *Logger {
	return &Logger{
		traceLogger:   log.New(out, "[TRACE]   ", flags),
		debugLogger:   log.New(out, "[DEBUG]   ", flags),
		verboseLogger: log.New(out, "[VERBOSE] ", flags),
		infoLogger:    log.New(out, "[INFO]    ", flags),
		warnLogger:    log.New(out, "[WARN]    ", flags),
		errorLogger:   log.New(errOut, "[ERROR]   ", flags),
	}
}

// 初始化全局 Logger 实例
// 默认写 stderr，stdout 留给命令行的结果输出
func init() {
	logLevel.Store(LevelInfo)
	logger.Store(newLogger(os.Stderr, os.Stderr))
}

// SetOutput 把所有级别重定向到 w（测试里用来捕获日志）
func SetOutput(w io.Writer) {
	logger.Store(newLogger(w, w))
}

// ParseLevel 级别名大小写不敏感
func ParseLevel(name string) (int, error) {
	lv, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return lv, nil
}

func SetLevel(level int) { logLevel.Store(int32(level)) }

func Level() int { return int(logLevel.Load()) }

func enabled(level int) bool { return int(logLevel.Load()) <= level }

// 包级别的日志方法
// calldepth=2 让 Lshortfile 指向调用方
func Trace(format string, v ...interface{}) {
	if enabled(LevelTrace) {
		_ = logger.Load().traceLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func Debug(format string, v ...interface{}) {
	if enabled(LevelDebug) {
		_ = logger.Load().debugLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func Verbose(format string, v ...interface{}) {
	if enabled(LevelVerbose) {
		_ = logger.Load().verboseLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func Info(format string, v ...interface{}) {
	if enabled(LevelInfo) {
		_ = logger.Load().infoLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func Warn(format string, v ...interface{}) {
	if enabled(LevelWarning) {
		_ = logger.Load().warnLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func Error(format string, v ...interface{}) {
	if enabled(LevelError) {
		_ = logger.Load().errorLogger.Output(2, fmt.Sprintf(format, v...))
	}
}
