package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant           = "shell executor logger not configured"
	commandRunnerNotConfiguredMessageConstant    = "shell executor command runner not configured"
	commandFailedTemplateConstant                = "%s exited with code %d"
	commandFailedWithErrorOutputTemplateConstant = "%s exited with code %d: %s"
	commandExecutionFailedTemplateConstant       = "%s could not be executed: %v"
	commandArgumentsSeparatorConstant            = " "
	logFieldCommandNameConstant                  = "command_name"
	logFieldCommandArgumentsConstant             = "command_arguments"
	logFieldWorkingDirectoryConstant             = "working_directory"
	logFieldExitCodeConstant                     = "exit_code"
	logFieldStandardErrorConstant                = "standard_error"
	commandGitStringConstant                     = "git"
	executionStartedStructuredMessageConstant    = "shell command started"
	executionFinishedStructuredMessageConstant   = "shell command finished"
	executionFailedStructuredMessageConstant     = "shell command failed"
)

// CommandName identifies a supported executable.
type CommandName string

// CommandGit identifies the git executable.
const CommandGit CommandName = CommandName(commandGitStringConstant)

// ErrLoggerNotConfigured indicates the executor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates the executor was constructed without a runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandDetails describes the arguments and environment of an invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
}

// ShellCommand pairs an executable with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable results of a command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner runs shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandFailedError reports a command that ran but exited with a non-zero code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command.
func (failedError CommandFailedError) Error() string {
	commandLabel := describeCommand(failedError.Command)
	trimmedStandardError := strings.TrimSpace(failedError.Result.StandardError)
	if len(trimmedStandardError) == 0 {
		return fmt.Sprintf(commandFailedTemplateConstant, commandLabel, failedError.Result.ExitCode)
	}
	return fmt.Sprintf(commandFailedWithErrorOutputTemplateConstant, commandLabel, failedError.Result.ExitCode, trimmedStandardError)
}

// CommandExecutionError reports a command that could not be started or awaited.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (executionError CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionFailedTemplateConstant, describeCommand(executionError.Command), executionError.Cause)
}

// Unwrap exposes the underlying cause.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

// ShellExecutor runs commands through a CommandRunner and logs their lifecycle.
type ShellExecutor struct {
	logger           *zap.Logger
	runner           CommandRunner
	eventObserver    CommandEventObserver
	messageFormatter CommandMessageFormatter
}

// ShellExecutorOption customizes a ShellExecutor.
type ShellExecutorOption func(executor *ShellExecutor)

// WithCommandEventObserver routes lifecycle events to the provided observer.
func WithCommandEventObserver(observer CommandEventObserver) ShellExecutorOption {
	return func(executor *ShellExecutor) {
		if observer != nil {
			executor.eventObserver = observer
		}
	}
}

// NewShellExecutor constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner, options ...ShellExecutorOption) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	executor := &ShellExecutor{
		logger:        logger,
		runner:        runner,
		eventObserver: noopCommandEventObserver{},
	}
	for _, option := range options {
		if option != nil {
			option(executor)
		}
	}
	return executor, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

// Execute runs an arbitrary command. A non-zero exit code yields CommandFailedError.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	if executionContext == nil {
		executionContext = context.Background()
	}

	executor.logger.Debug(
		executionStartedStructuredMessageConstant,
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.Strings(logFieldCommandArgumentsConstant, command.Details.Arguments),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	)
	executor.eventObserver.CommandStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Debug(
			executionFailedStructuredMessageConstant,
			zap.String(logFieldCommandNameConstant, string(command.Name)),
			zap.Error(runError),
		)
		executor.eventObserver.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.logger.Debug(
		executionFinishedStructuredMessageConstant,
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
		zap.String(logFieldStandardErrorConstant, strings.TrimSpace(executionResult.StandardError)),
	)
	executor.eventObserver.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	return executionResult, nil
}

func describeCommand(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	commandParts = append(commandParts, command.Details.Arguments...)
	return strings.Join(commandParts, commandArgumentsSeparatorConstant)
}
