// Package ui provides helpers for formatting human-readable console output.
//
// ConsoleCommandEventLogger turns shell command events into sentences on the
// diagnostic logger, and ReportPrinter writes the user-facing summary of a
// README update, styling it only when the output is a terminal.
package ui
