package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/temirov/readmesync/internal/execshell"
)

const (
	gitConfigSubcommandConstant               = "config"
	gitConfigGetFlagConstant                  = "--get"
	remoteURLConfigurationKeyTemplateConstant = "remote.%s.url"
	gitTerminalPromptEnvironmentNameConstant  = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptDisabledValueConstant    = "0"
	gitExecutorMissingMessageConstant         = "git executor not configured"
	remoteNameRequiredMessageConstant         = "remote name must be provided"
	remoteHasNoURLTemplateConstant            = "remote %q has no url configured"
	openRepositoryErrorTemplateConstant       = "unable to open repository at %s: %w"
	readRemoteErrorTemplateConstant           = "unable to read remote %q: %w"
	defaultRepositoryPathConstant             = "."
)

// ErrGitExecutorNotConfigured indicates the shell reader was built without an executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrRemoteNameRequired indicates an empty remote name was requested.
var ErrRemoteNameRequired = errors.New(remoteNameRequiredMessageConstant)

// GitExecutor exposes the subset of shell execution used to query git.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RemoteReaderKind selects how the remote URL is read.
type RemoteReaderKind string

// Supported remote readers.
const (
	RemoteReaderGitCLI RemoteReaderKind = "git"
	RemoteReaderGoGit  RemoteReaderKind = "gogit"
)

// RemoteReader reads the configured URL of a named remote.
type RemoteReader interface {
	ReadRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error)
}

// ShellRemoteReader queries remotes with `git config --get remote.<name>.url`.
type ShellRemoteReader struct {
	executor GitExecutor
}

// NewShellRemoteReader constructs a ShellRemoteReader.
func NewShellRemoteReader(executor GitExecutor) (*ShellRemoteReader, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &ShellRemoteReader{executor: executor}, nil
}

// ReadRemoteURL returns the trimmed remote URL. An unset remote surfaces as
// the executor's CommandFailedError because git exits with code 1.
func (reader *ShellRemoteReader) ReadRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return "", ErrRemoteNameRequired
	}

	executionResult, executionError := reader.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitConfigSubcommandConstant, gitConfigGetFlagConstant, fmt.Sprintf(remoteURLConfigurationKeyTemplateConstant, trimmedRemoteName)},
		WorkingDirectory:     repositoryPath,
		EnvironmentVariables: map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptDisabledValueConstant},
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// GoGitRemoteReader reads remotes from the repository configuration in-process.
type GoGitRemoteReader struct{}

// NewGoGitRemoteReader constructs a GoGitRemoteReader.
func NewGoGitRemoteReader() *GoGitRemoteReader {
	return &GoGitRemoteReader{}
}

// ReadRemoteURL opens the repository containing repositoryPath, searching
// parent directories for .git, and returns the first URL of the remote.
func (reader *GoGitRemoteReader) ReadRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return "", ErrRemoteNameRequired
	}
	if executionContext != nil {
		if contextError := executionContext.Err(); contextError != nil {
			return "", contextError
		}
	}
	if len(strings.TrimSpace(repositoryPath)) == 0 {
		repositoryPath = defaultRepositoryPathConstant
	}

	repository, openError := gogit.PlainOpenWithOptions(repositoryPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if openError != nil {
		return "", fmt.Errorf(openRepositoryErrorTemplateConstant, repositoryPath, openError)
	}

	remote, remoteError := repository.Remote(trimmedRemoteName)
	if remoteError != nil {
		return "", fmt.Errorf(readRemoteErrorTemplateConstant, trimmedRemoteName, remoteError)
	}

	remoteURLs := remote.Config().URLs
	if len(remoteURLs) == 0 {
		return "", fmt.Errorf(remoteHasNoURLTemplateConstant, trimmedRemoteName)
	}
	return strings.TrimSpace(remoteURLs[0]), nil
}
