package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMessagesForConfigLookup(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"config", "--get", "remote.origin.url"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	require.Equal(t, "Reading remote.origin.url in /workspace/repo", formatter.BuildStartedMessage(command))
	require.Equal(t, "remote.origin.url in /workspace/repo is git@github.com:owner/tool.git",
		formatter.BuildSuccessMessage(command, ExecutionResult{StandardOutput: "git@github.com:owner/tool.git\n"}))
	require.Equal(t, "remote.origin.url is not set in /workspace/repo",
		formatter.BuildSuccessMessage(command, ExecutionResult{}))
	require.Equal(t, "Failed to read remote.origin.url in /workspace/repo (exit code 1)",
		formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 1}))
}

func TestBuildMessagesWithoutWorkingDirectory(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandGit,
		Details: CommandDetails{Arguments: []string{"config", "--get", "remote.origin.url"}},
	}

	require.Equal(t, "Reading remote.origin.url in current directory", formatter.BuildStartedMessage(command))
	require.Equal(t, "Unable to read remote.origin.url in current directory: exec: \"git\": executable file not found in $PATH",
		formatter.BuildExecutionFailureMessage(command, errors.New("exec: \"git\": executable file not found in $PATH")))
}

func TestBuildGenericMessageForOtherCommands(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandGit,
		Details: CommandDetails{Arguments: []string{"status", "--porcelain"}, WorkingDirectory: "/workspace/repo"},
	}

	require.Equal(t, "Running git status --porcelain (in /workspace/repo)", formatter.BuildStartedMessage(command))
	require.Equal(t, "git status --porcelain (in /workspace/repo) failed with exit code 2: boom",
		formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 2, StandardError: "boom\n"}))
}

func TestRemoteGetURLUsesGenericMessages(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandGit,
		Details: CommandDetails{Arguments: []string{"remote", "get-url", "origin"}},
	}

	require.Equal(t, "Running git remote get-url origin", formatter.BuildStartedMessage(command))
}
