package gitrepo

import (
	"fmt"
	"strings"
)

const (
	sshProtocolPrefixConstant           = "ssh://"
	sshUserDelimiterConstant            = "@"
	sshPathDelimiterConstant            = ":"
	httpsProtocolPrefixConstant         = "https://"
	gitUserPrefixConstant               = "git@"
	pathSeparatorConstant               = "/"
	gitSuffixConstant                   = ".git"
	remoteURLParseErrorTemplateConstant = "%s: %s"
	invalidRemoteURLMessageConstant     = "invalid remote url"
	requiredValueMessageConstant        = "value required"
	unknownProtocolMessageConstant      = "unsupported remote protocol"
	httpsRemoteTemplateConstant         = "https://%s/%s/%s.git"
	sshRemoteTemplateConstant           = "git@%s:%s/%s.git"
)

// RemoteProtocol enumerates supported git remote protocols.
type RemoteProtocol string

// Supported remote protocols.
const (
	RemoteProtocolSSH   RemoteProtocol = RemoteProtocol("ssh")
	RemoteProtocolHTTPS RemoteProtocol = RemoteProtocol("https")
)

// RemoteURL represents a structured git remote URL.
type RemoteURL struct {
	Protocol   RemoteProtocol
	Host       string
	Owner      string
	Repository string
}

// RemoteURLParseError indicates a remote string could not be parsed.
type RemoteURLParseError struct {
	Input   string
	Message string
}

// Error describes the parse failure.
func (parseError RemoteURLParseError) Error() string {
	return fmt.Sprintf(remoteURLParseErrorTemplateConstant, parseError.Input, parseError.Message)
}

// UnsupportedProtocolError indicates the provided protocol cannot be formatted.
type UnsupportedProtocolError struct {
	Protocol RemoteProtocol
}

// Error describes the unsupported protocol.
func (protocolError UnsupportedProtocolError) Error() string {
	return fmt.Sprintf(remoteURLParseErrorTemplateConstant, protocolError.Protocol, unknownProtocolMessageConstant)
}

// RepositoryIdentifier derives the short repository name from a remote URL.
// Every ".git" occurrence is removed, not only a trailing one, and the last
// "/" segment is returned. An SCP-style remote without a slash yields the
// whole remaining string.
func RepositoryIdentifier(remote string) string {
	withoutSuffix := strings.ReplaceAll(strings.TrimSpace(remote), gitSuffixConstant, "")
	segments := strings.Split(withoutSuffix, pathSeparatorConstant)
	return segments[len(segments)-1]
}

// ParseRemoteURL converts a textual remote URL into a structured representation.
func ParseRemoteURL(remote string) (RemoteURL, error) {
	trimmedRemote := strings.TrimSpace(remote)
	if len(trimmedRemote) == 0 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: requiredValueMessageConstant}
	}

	switch {
	case strings.HasPrefix(trimmedRemote, sshProtocolPrefixConstant):
		return parseSSHRemote(strings.TrimPrefix(trimmedRemote, sshProtocolPrefixConstant))
	case strings.HasPrefix(trimmedRemote, gitUserPrefixConstant):
		return parseSSHRemote(trimmedRemote)
	case strings.HasPrefix(trimmedRemote, httpsProtocolPrefixConstant):
		return parseHTTPSRemote(strings.TrimPrefix(trimmedRemote, httpsProtocolPrefixConstant))
	default:
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}
}

// FormatRemoteURL renders a structured remote back into its textual form.
func FormatRemoteURL(remote RemoteURL) (string, error) {
	for _, requiredValue := range []string{remote.Host, remote.Owner, remote.Repository} {
		if len(strings.TrimSpace(requiredValue)) == 0 {
			return "", RemoteURLParseError{Input: requiredValue, Message: requiredValueMessageConstant}
		}
	}

	switch remote.Protocol {
	case RemoteProtocolSSH:
		return fmt.Sprintf(sshRemoteTemplateConstant, remote.Host, remote.Owner, remote.Repository), nil
	case RemoteProtocolHTTPS:
		return fmt.Sprintf(httpsRemoteTemplateConstant, remote.Host, remote.Owner, remote.Repository), nil
	default:
		return "", UnsupportedProtocolError{Protocol: remote.Protocol}
	}
}

func parseSSHRemote(remote string) (RemoteURL, error) {
	userSplitIndex := strings.Index(remote, sshUserDelimiterConstant)
	if userSplitIndex == -1 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}

	hostAndPath := remote[userSplitIndex+1:]
	delimiterIndex := strings.Index(hostAndPath, sshPathDelimiterConstant)
	if delimiterIndex == -1 {
		delimiterIndex = strings.Index(hostAndPath, pathSeparatorConstant)
	}
	if delimiterIndex == -1 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}

	owner, repository, parseError := splitOwnerAndRepository(hostAndPath[delimiterIndex+1:])
	if parseError != nil {
		return RemoteURL{}, parseError
	}
	return RemoteURL{Protocol: RemoteProtocolSSH, Host: hostAndPath[:delimiterIndex], Owner: owner, Repository: repository}, nil
}

func parseHTTPSRemote(remote string) (RemoteURL, error) {
	pathComponents := strings.Split(remote, pathSeparatorConstant)
	if len(pathComponents) < 3 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}

	repository, parseError := normalizeRepositoryName(strings.Join(pathComponents[2:], pathSeparatorConstant))
	if parseError != nil {
		return RemoteURL{}, parseError
	}
	return RemoteURL{Protocol: RemoteProtocolHTTPS, Host: pathComponents[0], Owner: pathComponents[1], Repository: repository}, nil
}

func splitOwnerAndRepository(path string) (string, string, error) {
	segments := strings.Split(path, pathSeparatorConstant)
	if len(segments) != 2 || len(segments[0]) == 0 {
		return "", "", RemoteURLParseError{Input: path, Message: invalidRemoteURLMessageConstant}
	}
	repository, parseError := normalizeRepositoryName(segments[1])
	if parseError != nil {
		return "", "", parseError
	}
	return segments[0], repository, nil
}

func normalizeRepositoryName(repository string) (string, error) {
	trimmed := strings.TrimSuffix(repository, gitSuffixConstant)
	if len(trimmed) == 0 {
		return "", RemoteURLParseError{Input: repository, Message: invalidRemoteURLMessageConstant}
	}
	return trimmed, nil
}
