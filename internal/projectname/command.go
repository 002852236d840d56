package projectname

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/readmesync/internal/dependencies"
	"github.com/temirov/readmesync/internal/gitrepo"
	"github.com/temirov/readmesync/internal/ui"
)

const (
	commandUseConstant              = "name"
	commandShortDescriptionConstant = "Print the project name derived from the git remote"
	commandLongDescriptionConstant  = "name resolves the repository identifier the way update does and prints it with its source and the formatted project title, without touching the README."
)

// CommandConfiguration captures the resolution settings shared with the README update.
type CommandConfiguration struct {
	RemoteName         string
	RemoteReader       string
	FallbackIdentifier string
}

// CommandBuilder assembles the name command.
type CommandBuilder struct {
	LoggerProvider               func() *zap.Logger
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	GitExecutor                  gitrepo.GitExecutor
	RemoteReader                 gitrepo.RemoteReader
	WorkingDirectory             string
}

// Build constructs the name command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := CommandConfiguration{}
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	logger := builder.resolveLogger()

	humanReadable := builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider()
	remoteReader := builder.RemoteReader
	if remoteReader == nil {
		gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, humanReadable)
		if executorError != nil {
			return executorError
		}
		resolvedReader, readerError := dependencies.ResolveRemoteReader(nil, gitrepo.RemoteReaderKind(configuration.RemoteReader), gitExecutor)
		if readerError != nil {
			return readerError
		}
		remoteReader = resolvedReader
	}

	resolver, resolverError := NewResolver(ResolverDependencies{RemoteReader: remoteReader, Logger: logger})
	if resolverError != nil {
		return resolverError
	}

	resolution := resolver.Resolve(command.Context(), ResolveOptions{
		RepositoryPath:     builder.WorkingDirectory,
		RemoteName:         configuration.RemoteName,
		FallbackIdentifier: configuration.FallbackIdentifier,
	})
	ui.NewReportPrinter(command.OutOrStdout()).PrintResolution(resolution.Identifier, string(resolution.Source), FormatTitle(resolution.Identifier))
	return nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	if logger := builder.LoggerProvider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}
