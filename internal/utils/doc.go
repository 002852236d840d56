// Package utils hosts the configuration loader and logger factory shared by
// every readmesync command.
//
// ConfigurationLoader layers embedded defaults, an optional configuration file
// and READMESYNC_* environment variables through Viper. LoggerFactory builds
// zap loggers writing to stderr and, when configured, to a rotating log file.
package utils
