// Package tree renders a directory hierarchy as ASCII tree lines.
package tree
