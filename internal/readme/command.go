package readme

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/readmesync/internal/dependencies"
	"github.com/temirov/readmesync/internal/gitrepo"
	"github.com/temirov/readmesync/internal/projectname"
	"github.com/temirov/readmesync/internal/tree"
	"github.com/temirov/readmesync/internal/ui"
	"github.com/temirov/readmesync/internal/utils/flags"
	pathutils "github.com/temirov/readmesync/internal/utils/path"
)

const (
	commandUseConstant                     = "update"
	commandShortDescriptionConstant        = "Rewrite the README title, clone commands and directory tree"
	commandLongDescriptionConstant         = "update derives the project name from the git remote, rewrites the README's first heading and its git clone/cd commands, and regenerates the directory tree between the TREE_START and TREE_END markers."
	commandExecutionErrorTemplateConstant  = "readme update failed: %w"
	flagDocumentNameConstant               = "readme"
	flagDocumentDescriptionConstant        = "Path of the README to rewrite"
	flagTreeRootNameConstant               = "root"
	flagTreeRootDescriptionConstant        = "Directory rendered as the tree"
	flagOwnerNameConstant                  = "owner"
	flagOwnerDescriptionConstant           = "GitHub owner written into git clone commands"
	flagOwnerFromRemoteNameConstant        = "owner-from-remote"
	flagOwnerFromRemoteDescriptionConstant = "Take the clone owner from the remote URL when it can be parsed"
	flagRemoteNameConstant                 = "remote"
	flagRemoteDescriptionConstant          = "Remote whose URL names the project"
	flagRemoteReaderNameConstant           = "remote-reader"
	flagRemoteReaderDescriptionConstant    = "How the remote URL is read"
	flagFallbackNameConstant               = "fallback-name"
	flagFallbackDescriptionConstant        = "Identifier used when the remote cannot be read"
	flagDryRunNameConstant                 = "dry-run"
	flagDryRunDescriptionConstant          = "Print a diff instead of writing the README"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// HumanReadableLoggingProvider reports whether console logging is active.
type HumanReadableLoggingProvider func() bool

// ConfigurationProvider supplies the loaded readme configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the Cobra command that updates the README.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	ConfigurationProvider        ConfigurationProvider
	FileSystem                   afero.Fs
	GitExecutor                  gitrepo.GitExecutor
	RemoteReader                 gitrepo.RemoteReader
	WorkingDirectory             string
}

// Build constructs the update command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
	}
	builder.Attach(command)
	return command, nil
}

// Attach installs the update flags and behavior on an existing command, so
// the root command performs the update when invoked without a subcommand.
func (builder *CommandBuilder) Attach(command *cobra.Command) {
	if command == nil {
		return
	}

	defaults := DefaultConfiguration()
	command.Flags().String(flagDocumentNameConstant, defaults.DocumentPath, flagDocumentDescriptionConstant)
	command.Flags().String(flagTreeRootNameConstant, defaults.TreeRoot, flagTreeRootDescriptionConstant)
	command.Flags().String(flagOwnerNameConstant, defaults.Owner, flagOwnerDescriptionConstant)
	command.Flags().Bool(flagOwnerFromRemoteNameConstant, defaults.OwnerFromRemote, flagOwnerFromRemoteDescriptionConstant)
	command.Flags().String(flagRemoteNameConstant, defaults.RemoteName, flagRemoteDescriptionConstant)
	command.Flags().String(
		flagRemoteReaderNameConstant,
		defaults.RemoteReader,
		flags.FormatChoiceUsage(defaults.RemoteReader, []string{string(gitrepo.RemoteReaderGitCLI), string(gitrepo.RemoteReaderGoGit)}, flagRemoteReaderDescriptionConstant),
	)
	command.Flags().String(flagFallbackNameConstant, defaults.FallbackIdentifier, flagFallbackDescriptionConstant)
	command.Flags().Bool(flagDryRunNameConstant, defaults.DryRun, flagDryRunDescriptionConstant)
	command.RunE = builder.run
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.parseConfiguration(command)
	logger := builder.resolveLogger()

	service, serviceError := builder.buildService(logger, configuration)
	if serviceError != nil {
		return serviceError
	}

	options := configuration.Options()
	options.RepositoryPath = builder.WorkingDirectory

	result, updateError := service.Update(command.Context(), options)
	if updateError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, updateError)
	}

	printer := ui.NewReportPrinter(command.OutOrStdout())
	if result.Written {
		printer.PrintUpdated(result.Resolution.Identifier, result.Title)
		return nil
	}
	printer.PrintPreview(result.Resolution.Identifier, result.Title, result.Diff)
	return nil
}

func (builder *CommandBuilder) buildService(logger *zap.Logger, configuration Configuration) (*Service, error) {
	fileSystem := dependencies.ResolveFileSystem(builder.FileSystem)

	remoteReader := builder.RemoteReader
	if remoteReader == nil {
		gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, builder.humanReadableLogging())
		if executorError != nil {
			return nil, executorError
		}
		resolvedReader, readerError := dependencies.ResolveRemoteReader(nil, gitrepo.RemoteReaderKind(configuration.RemoteReader), gitExecutor)
		if readerError != nil {
			return nil, readerError
		}
		remoteReader = resolvedReader
	}

	resolver, resolverError := projectname.NewResolver(projectname.ResolverDependencies{RemoteReader: remoteReader, Logger: logger})
	if resolverError != nil {
		return nil, resolverError
	}

	return NewService(ServiceDependencies{
		FileSystem:    fileSystem,
		NameResolver:  resolver,
		TreeGenerator: tree.NewGenerator(fileSystem, configuration.IgnoredNames...),
		Logger:        logger,
	})
}

// parseConfiguration layers explicitly set flags over the loaded configuration.
func (builder *CommandBuilder) parseConfiguration(command *cobra.Command) Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	commandFlags := command.Flags()
	if commandFlags.Changed(flagDocumentNameConstant) {
		configuration.DocumentPath, _ = commandFlags.GetString(flagDocumentNameConstant)
	}
	if commandFlags.Changed(flagTreeRootNameConstant) {
		configuration.TreeRoot, _ = commandFlags.GetString(flagTreeRootNameConstant)
	}
	if commandFlags.Changed(flagOwnerNameConstant) {
		configuration.Owner, _ = commandFlags.GetString(flagOwnerNameConstant)
	}
	if commandFlags.Changed(flagOwnerFromRemoteNameConstant) {
		configuration.OwnerFromRemote, _ = commandFlags.GetBool(flagOwnerFromRemoteNameConstant)
	}
	if commandFlags.Changed(flagRemoteNameConstant) {
		configuration.RemoteName, _ = commandFlags.GetString(flagRemoteNameConstant)
	}
	if commandFlags.Changed(flagRemoteReaderNameConstant) {
		configuration.RemoteReader, _ = commandFlags.GetString(flagRemoteReaderNameConstant)
	}
	if commandFlags.Changed(flagFallbackNameConstant) {
		configuration.FallbackIdentifier, _ = commandFlags.GetString(flagFallbackNameConstant)
	}
	if commandFlags.Changed(flagDryRunNameConstant) {
		configuration.DryRun, _ = commandFlags.GetBool(flagDryRunNameConstant)
	}

	sanitized := configuration.Sanitize()
	homeExpander := pathutils.NewHomeExpander()
	sanitized.DocumentPath = homeExpander.Expand(sanitized.DocumentPath)
	sanitized.TreeRoot = homeExpander.Expand(sanitized.TreeRoot)
	return sanitized
}

func (builder *CommandBuilder) humanReadableLogging() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
