package readme

import (
	"strings"

	"github.com/temirov/readmesync/internal/gitrepo"
	"github.com/temirov/readmesync/internal/projectname"
)

const (
	// DefaultDocumentPath is the README rewritten when no path is configured.
	DefaultDocumentPath = "README.md"
	// DefaultTreeRoot is the directory listed when no root is configured.
	DefaultTreeRoot = "."
	// DefaultOwner is the GitHub owner written into clone commands.
	DefaultOwner = "mnoukhej"

	configurationPathKeyConstant               = "path"
	configurationRootKeyConstant               = "root"
	configurationOwnerKeyConstant              = "owner"
	configurationOwnerFromRemoteKeyConstant    = "owner_from_remote"
	configurationRemoteKeyConstant             = "remote"
	configurationRemoteReaderKeyConstant       = "remote_reader"
	configurationFallbackIdentifierKeyConstant = "fallback_identifier"
	configurationIgnoreKeyConstant             = "ignore"
	configurationDryRunKeyConstant             = "dry_run"
	configurationKeySeparatorConstant          = "."
)

// Configuration captures configuration values for the README update.
type Configuration struct {
	DocumentPath       string   `mapstructure:"path"`
	TreeRoot           string   `mapstructure:"root"`
	Owner              string   `mapstructure:"owner"`
	OwnerFromRemote    bool     `mapstructure:"owner_from_remote"`
	RemoteName         string   `mapstructure:"remote"`
	RemoteReader       string   `mapstructure:"remote_reader"`
	FallbackIdentifier string   `mapstructure:"fallback_identifier"`
	IgnoredNames       []string `mapstructure:"ignore"`
	DryRun             bool     `mapstructure:"dry_run"`
}

// DefaultConfiguration reproduces the tool's fixed behavior.
func DefaultConfiguration() Configuration {
	return Configuration{
		DocumentPath:       DefaultDocumentPath,
		TreeRoot:           DefaultTreeRoot,
		Owner:              DefaultOwner,
		OwnerFromRemote:    false,
		RemoteName:         projectname.DefaultRemoteName,
		RemoteReader:       string(gitrepo.RemoteReaderGitCLI),
		FallbackIdentifier: projectname.DefaultFallbackIdentifier,
		IgnoredNames:       []string{},
		DryRun:             false,
	}
}

// DefaultConfigurationValues produces Viper defaults under rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	prefix := rootKey + configurationKeySeparatorConstant
	return map[string]any{
		prefix + configurationPathKeyConstant:               defaults.DocumentPath,
		prefix + configurationRootKeyConstant:               defaults.TreeRoot,
		prefix + configurationOwnerKeyConstant:              defaults.Owner,
		prefix + configurationOwnerFromRemoteKeyConstant:    defaults.OwnerFromRemote,
		prefix + configurationRemoteKeyConstant:             defaults.RemoteName,
		prefix + configurationRemoteReaderKeyConstant:       defaults.RemoteReader,
		prefix + configurationFallbackIdentifierKeyConstant: defaults.FallbackIdentifier,
		prefix + configurationIgnoreKeyConstant:             defaults.IgnoredNames,
		prefix + configurationDryRunKeyConstant:             defaults.DryRun,
	}
}

// Sanitize trims values and restores defaults for blank entries.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.DocumentPath = defaultIfBlank(configuration.DocumentPath, DefaultDocumentPath)
	sanitized.TreeRoot = defaultIfBlank(configuration.TreeRoot, DefaultTreeRoot)
	sanitized.Owner = defaultIfBlank(configuration.Owner, DefaultOwner)
	sanitized.RemoteName = defaultIfBlank(configuration.RemoteName, projectname.DefaultRemoteName)
	sanitized.RemoteReader = strings.ToLower(defaultIfBlank(configuration.RemoteReader, string(gitrepo.RemoteReaderGitCLI)))
	sanitized.FallbackIdentifier = defaultIfBlank(configuration.FallbackIdentifier, projectname.DefaultFallbackIdentifier)

	sanitized.IgnoredNames = make([]string, 0, len(configuration.IgnoredNames))
	for _, ignoredName := range configuration.IgnoredNames {
		trimmedName := strings.TrimSpace(ignoredName)
		if len(trimmedName) > 0 {
			sanitized.IgnoredNames = append(sanitized.IgnoredNames, trimmedName)
		}
	}
	return sanitized
}

// Options converts the configuration into update options.
func (configuration Configuration) Options() Options {
	return Options{
		DocumentPath:       configuration.DocumentPath,
		TreeRoot:           configuration.TreeRoot,
		RemoteName:         configuration.RemoteName,
		FallbackIdentifier: configuration.FallbackIdentifier,
		Owner:              configuration.Owner,
		OwnerFromRemote:    configuration.OwnerFromRemote,
		DryRun:             configuration.DryRun,
	}
}
