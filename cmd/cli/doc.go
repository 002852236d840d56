// Package cli constructs the readmesync command-line interface. The root
// command rewrites README.md in place; the update, tree and name subcommands
// expose the same pipeline piecewise. Configuration comes from the embedded
// defaults, an optional config.yaml and READMESYNC_* environment variables.
package cli
