package readme

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/temirov/readmesync/internal/gitrepo"
)

const (
	// TreeStartMarker opens the generated tree region.
	TreeStartMarker = "<!-- TREE_START -->"
	// TreeEndMarker closes the generated tree region.
	TreeEndMarker = "<!-- TREE_END -->"

	headingPrefixConstant          = "#"
	headingTemplateConstant        = "# 📁 %s"
	lineFeedConstant               = "\n"
	carriageReturnConstant         = "\r"
	codeFenceConstant              = "```"
	appendedBlockSeparatorConstant = "\n\n"
	cloneCommandTemplateConstant   = "git clone %s"
	cdCommandTemplateConstant      = "cd %s"
	cloneHostConstant              = "github.com"
)

var cloneCommandPattern = regexp.MustCompile(`git clone https://github.com/.+?/.+?\.git`)

var changeDirectoryCommandPattern = regexp.MustCompile(`\bcd\s+\S+`)

// UpdateTitle replaces the first line whose left-trimmed text starts with "#"
// with the project heading. Documents without such a line are returned as is.
func UpdateTitle(content string, projectTitle string) string {
	lineStart := 0
	for lineStart <= len(content) {
		lineEnd := strings.Index(content[lineStart:], lineFeedConstant)
		if lineEnd == -1 {
			lineEnd = len(content)
		} else {
			lineEnd += lineStart
		}

		line := strings.TrimSuffix(content[lineStart:lineEnd], carriageReturnConstant)
		if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), headingPrefixConstant) {
			return content[:lineStart] + fmt.Sprintf(headingTemplateConstant, projectTitle) + content[lineStart+len(line):]
		}

		lineStart = lineEnd + len(lineFeedConstant)
	}
	return content
}

// UpdateCommands rewrites every GitHub clone command to clone
// owner/identifier and every `cd <path>` command to `cd <identifier>`. Matches
// are replaced regardless of which project they refer to.
func UpdateCommands(content string, identifier string, owner string) (string, error) {
	cloneURL, formatError := gitrepo.FormatRemoteURL(gitrepo.RemoteURL{
		Protocol:   gitrepo.RemoteProtocolHTTPS,
		Host:       cloneHostConstant,
		Owner:      owner,
		Repository: identifier,
	})
	if formatError != nil {
		return "", formatError
	}

	updatedContent := cloneCommandPattern.ReplaceAllLiteralString(content, fmt.Sprintf(cloneCommandTemplateConstant, cloneURL))
	return changeDirectoryCommandPattern.ReplaceAllLiteralString(updatedContent, fmt.Sprintf(cdCommandTemplateConstant, identifier)), nil
}

// TreeBlock wraps tree lines in the marker pair and a code fence.
func TreeBlock(treeLines []string) string {
	return strings.Join([]string{
		TreeStartMarker,
		codeFenceConstant,
		strings.Join(treeLines, lineFeedConstant),
		codeFenceConstant,
		TreeEndMarker,
	}, lineFeedConstant)
}

// UpdateTree replaces the region from the first TreeStartMarker through the
// first TreeEndMarker with a fresh tree block. When either marker is missing
// the block is appended to the end of the document instead.
func UpdateTree(content string, treeLines []string) string {
	block := TreeBlock(treeLines)

	beforeStart, _, startFound := strings.Cut(content, TreeStartMarker)
	_, afterEnd, endFound := strings.Cut(content, TreeEndMarker)
	if !startFound || !endFound {
		return content + appendedBlockSeparatorConstant + block
	}
	return beforeStart + block + afterEnd
}
