package utils

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
	logFileMaximumSizeMegabytesConstant  = 10
	logFileMaximumBackupsConstant        = 3
	logFileMaximumAgeDaysConstant        = 28
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// LoggerConfiguration describes the logger to build.
type LoggerConfiguration struct {
	Level    LogLevel
	Format   LogFormat
	FilePath string
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct {
	diagnosticSink zapcore.WriteSyncer
}

// NewLoggerFactory constructs a factory writing diagnostics to stderr.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// NewLoggerFactoryWithSink constructs a factory writing diagnostics to sink.
func NewLoggerFactoryWithSink(sink zapcore.WriteSyncer) *LoggerFactory {
	return &LoggerFactory{diagnosticSink: sink}
}

// CreateLogger produces a zap.Logger honoring the requested level and format.
// A non-empty FilePath adds a size-rotated file sink with JSON entries.
func (factory *LoggerFactory) CreateLogger(configuration LoggerConfiguration) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[LogLevel(strings.ToLower(strings.TrimSpace(string(configuration.Level))))]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, configuration.Level)
	}

	diagnosticEncoder, encoderError := newEncoder(LogFormat(strings.ToLower(strings.TrimSpace(string(configuration.Format)))))
	if encoderError != nil {
		return nil, encoderError
	}

	levelEnabler := zap.NewAtomicLevelAt(zapLogLevel)
	cores := []zapcore.Core{zapcore.NewCore(diagnosticEncoder, factory.resolveDiagnosticSink(), levelEnabler)}

	trimmedFilePath := strings.TrimSpace(configuration.FilePath)
	if len(trimmedFilePath) > 0 {
		rotatingFile := &lumberjack.Logger{
			Filename:   trimmedFilePath,
			MaxSize:    logFileMaximumSizeMegabytesConstant,
			MaxBackups: logFileMaximumBackupsConstant,
			MaxAge:     logFileMaximumAgeDaysConstant,
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotatingFile), levelEnabler))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func (factory *LoggerFactory) resolveDiagnosticSink() zapcore.WriteSyncer {
	if factory == nil || factory.diagnosticSink == nil {
		return zapcore.Lock(os.Stderr)
	}
	return factory.diagnosticSink
}

func newEncoder(format LogFormat) (zapcore.Encoder, error) {
	switch format {
	case LogFormatStructured:
		encoderConfiguration := zap.NewProductionEncoderConfig()
		encoderConfiguration.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(encoderConfiguration), nil
	case LogFormatConsole:
		encoderConfiguration := zap.NewDevelopmentEncoderConfig()
		encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfiguration), nil
	default:
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, format)
	}
}
