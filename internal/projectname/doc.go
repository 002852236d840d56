// Package projectname derives a README's project name from the repository.
//
// Resolver reads the configured remote and reduces its URL to a repository
// identifier, falling back to a placeholder when no remote can be read. The
// Resolution it returns records which of the two happened. FormatTitle turns
// the identifier into the human-readable title used as the README heading.
package projectname
