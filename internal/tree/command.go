package tree

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/readmesync/internal/ui"
	pathutils "github.com/temirov/readmesync/internal/utils/path"
)

const (
	commandUseConstant                    = "tree [path]"
	commandShortDescriptionConstant       = "Print the directory tree embedded in the README"
	commandLongDescriptionConstant        = "tree prints the listing that update writes between the TREE_START and TREE_END markers. Without a path the configured root is listed."
	commandExecutionErrorTemplateConstant = "tree generation failed: %w"
	treeGeneratedMessageConstant          = "tree generated"
	logFieldRootConstant                  = "root"
	logFieldLineCountConstant             = "line_count"
	defaultRootConstant                   = "."
)

// CommandConfiguration captures the tree settings shared with the README update.
type CommandConfiguration struct {
	Root         string
	IgnoredNames []string
}

// CommandBuilder assembles the tree command.
type CommandBuilder struct {
	LoggerProvider        func() *zap.Logger
	ConfigurationProvider func() CommandConfiguration
	FileSystem            afero.Fs
}

// Build constructs the tree command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := CommandConfiguration{Root: defaultRootConstant}
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	rootPath := configuration.Root
	if len(arguments) == 1 {
		rootPath = arguments[0]
	}
	rootPath = pathutils.NewHomeExpander().Expand(rootPath)
	if len(rootPath) == 0 {
		rootPath = defaultRootConstant
	}

	treeLines, generateError := NewGenerator(builder.FileSystem, configuration.IgnoredNames...).Generate(rootPath)
	if generateError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, generateError)
	}

	builder.resolveLogger().Info(treeGeneratedMessageConstant, zap.String(logFieldRootConstant, rootPath), zap.Int(logFieldLineCountConstant, len(treeLines)))
	ui.NewReportPrinter(command.OutOrStdout()).PrintLines(treeLines)
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
