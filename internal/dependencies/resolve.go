// Package dependencies builds default collaborators for commands that were
// not handed explicit ones, keeping command builders easy to test.
package dependencies

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/readmesync/internal/execshell"
	"github.com/temirov/readmesync/internal/gitrepo"
	"github.com/temirov/readmesync/internal/ui"
)

const unsupportedRemoteReaderTemplateConstant = "unsupported remote reader %q"

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing afero.Fs) afero.Fs {
	if existing != nil {
		return existing
	}
	return afero.NewOsFs()
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed
// default. Human-readable logging attaches a console event logger.
func ResolveGitExecutor(existing gitrepo.GitExecutor, logger *zap.Logger, humanReadableLogging bool) (gitrepo.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	executorOptions := []execshell.ShellExecutorOption{}
	if humanReadableLogging {
		executorOptions = append(executorOptions, execshell.WithCommandEventObserver(ui.NewConsoleCommandEventLogger(logger)))
	}
	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), executorOptions...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveRemoteReader returns the provided reader or the reader selected by kind.
func ResolveRemoteReader(existing gitrepo.RemoteReader, kind gitrepo.RemoteReaderKind, executor gitrepo.GitExecutor) (gitrepo.RemoteReader, error) {
	if existing != nil {
		return existing, nil
	}

	switch kind {
	case gitrepo.RemoteReaderGoGit:
		return gitrepo.NewGoGitRemoteReader(), nil
	case gitrepo.RemoteReaderGitCLI, "":
		shellReader, creationError := gitrepo.NewShellRemoteReader(executor)
		if creationError != nil {
			return nil, creationError
		}
		return shellReader, nil
	default:
		return nil, fmt.Errorf(unsupportedRemoteReaderTemplateConstant, kind)
	}
}
