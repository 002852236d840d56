package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

const (
	branchConnectorConstant            = "├── "
	lastBranchConnectorConstant        = "└── "
	branchExtensionConstant            = "│   "
	lastBranchExtensionConstant        = "    "
	hiddenEntryPrefixConstant          = "."
	listDirectoryErrorTemplateConstant = "unable to list %s: %w"
)

// DefaultIgnoredNames lists entries that never appear in a tree.
var DefaultIgnoredNames = []string{".git", ".venv", "__pycache__", "build", "dist", ".idea", ".vscode"}

// Generator lists directories as tree lines.
type Generator struct {
	fileSystem   afero.Fs
	ignoredNames map[string]struct{}
}

type directoryFrame struct {
	path    string
	prefix  string
	entries []os.FileInfo
	next    int
}

// NewGenerator constructs a Generator over fileSystem, defaulting to the OS
// filesystem. additionalIgnoredNames extend DefaultIgnoredNames.
func NewGenerator(fileSystem afero.Fs, additionalIgnoredNames ...string) *Generator {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}

	ignoredNames := make(map[string]struct{}, len(DefaultIgnoredNames)+len(additionalIgnoredNames))
	for _, ignoredName := range append(append([]string{}, DefaultIgnoredNames...), additionalIgnoredNames...) {
		trimmedName := strings.TrimSpace(ignoredName)
		if len(trimmedName) > 0 {
			ignoredNames[trimmedName] = struct{}{}
		}
	}

	return &Generator{fileSystem: fileSystem, ignoredNames: ignoredNames}
}

// Generate returns one line per visible entry below rootPath in depth-first
// pre-order. Siblings are sorted by name; hidden and ignored entries are
// skipped. Symbolic links are listed but never followed.
func (generator *Generator) Generate(rootPath string) ([]string, error) {
	rootEntries, listError := generator.listEntries(rootPath)
	if listError != nil {
		return nil, listError
	}

	lines := []string{}
	stack := []*directoryFrame{{path: rootPath, entries: rootEntries}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		if frame.next == len(frame.entries) {
			stack = stack[:len(stack)-1]
			continue
		}

		entry := frame.entries[frame.next]
		frame.next++
		lastSibling := frame.next == len(frame.entries)

		connector := branchConnectorConstant
		extension := branchExtensionConstant
		if lastSibling {
			connector = lastBranchConnectorConstant
			extension = lastBranchExtensionConstant
		}
		lines = append(lines, frame.prefix+connector+entry.Name())

		if !entry.IsDir() {
			continue
		}

		childPath := filepath.Join(frame.path, entry.Name())
		childEntries, childListError := generator.listEntries(childPath)
		if childListError != nil {
			return nil, childListError
		}
		stack = append(stack, &directoryFrame{path: childPath, prefix: frame.prefix + extension, entries: childEntries})
	}

	return lines, nil
}

func (generator *Generator) listEntries(directoryPath string) ([]os.FileInfo, error) {
	directoryEntries, readError := afero.ReadDir(generator.fileSystem, directoryPath)
	if readError != nil {
		return nil, fmt.Errorf(listDirectoryErrorTemplateConstant, directoryPath, readError)
	}

	visibleEntries := make([]os.FileInfo, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if strings.HasPrefix(directoryEntry.Name(), hiddenEntryPrefixConstant) {
			continue
		}
		if _, ignored := generator.ignoredNames[directoryEntry.Name()]; ignored {
			continue
		}
		visibleEntries = append(visibleEntries, directoryEntry)
	}

	sort.Slice(visibleEntries, func(leftIndex int, rightIndex int) bool {
		return visibleEntries[leftIndex].Name() < visibleEntries[rightIndex].Name()
	})
	return visibleEntries, nil
}
