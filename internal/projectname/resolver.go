package projectname

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/readmesync/internal/gitrepo"
)

const (
	// DefaultFallbackIdentifier is used when no remote URL can be read.
	DefaultFallbackIdentifier = "project-name"
	// DefaultRemoteName is the remote consulted when none is configured.
	DefaultRemoteName = "origin"

	remoteReaderMissingMessageConstant  = "remote reader not configured"
	emptyRemoteURLMessageConstant       = "remote url is empty"
	emptyIdentifierMessageConstant      = "remote url does not end with a repository name"
	resolvedFromRemoteMessageConstant   = "repository identifier resolved from remote"
	resolvedFromFallbackMessageConstant = "repository identifier fell back to default"
	logFieldRemoteNameConstant          = "remote_name"
	logFieldRemoteURLConstant           = "remote_url"
	logFieldIdentifierConstant          = "identifier"
	logFieldRepositoryPathConstant      = "repository_path"
)

// ErrRemoteReaderNotConfigured indicates the resolver was built without a remote reader.
var ErrRemoteReaderNotConfigured = errors.New(remoteReaderMissingMessageConstant)

// ErrEmptyRemoteURL indicates the remote lookup succeeded but returned nothing.
var ErrEmptyRemoteURL = errors.New(emptyRemoteURLMessageConstant)

// ErrEmptyIdentifier indicates the remote URL produced an empty identifier.
var ErrEmptyIdentifier = errors.New(emptyIdentifierMessageConstant)

// ResolutionSource records where a repository identifier came from.
type ResolutionSource string

// Supported resolution sources.
const (
	ResolutionSourceRemote   ResolutionSource = "remote"
	ResolutionSourceFallback ResolutionSource = "fallback"
)

// Resolution is the outcome of resolving a repository identifier. It is
// always usable: Identifier is never empty.
type Resolution struct {
	Identifier  string
	Source      ResolutionSource
	RemoteURL   string
	LookupError error
}

// FellBack reports whether the fallback identifier was used.
func (resolution Resolution) FellBack() bool {
	return resolution.Source == ResolutionSourceFallback
}

// ResolverDependencies enumerates collaborators required by the resolver.
type ResolverDependencies struct {
	RemoteReader gitrepo.RemoteReader
	Logger       *zap.Logger
}

// ResolveOptions configure a single resolution.
type ResolveOptions struct {
	RepositoryPath     string
	RemoteName         string
	FallbackIdentifier string
}

// Resolver derives repository identifiers from git remotes.
type Resolver struct {
	remoteReader gitrepo.RemoteReader
	logger       *zap.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(dependencies ResolverDependencies) (*Resolver, error) {
	if dependencies.RemoteReader == nil {
		return nil, ErrRemoteReaderNotConfigured
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{remoteReader: dependencies.RemoteReader, logger: logger}, nil
}

// Resolve reads the remote URL and derives the identifier. Lookup failures are
// never returned; they are recorded on the Resolution and the fallback is used.
func (resolver *Resolver) Resolve(executionContext context.Context, options ResolveOptions) Resolution {
	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = DefaultRemoteName
	}
	fallbackIdentifier := strings.TrimSpace(options.FallbackIdentifier)
	if len(fallbackIdentifier) == 0 {
		fallbackIdentifier = DefaultFallbackIdentifier
	}

	remoteURL, readError := resolver.remoteReader.ReadRemoteURL(executionContext, options.RepositoryPath, remoteName)
	if readError == nil && len(strings.TrimSpace(remoteURL)) == 0 {
		readError = ErrEmptyRemoteURL
	}

	identifier := ""
	if readError == nil {
		identifier = gitrepo.RepositoryIdentifier(remoteURL)
		if len(identifier) == 0 {
			readError = ErrEmptyIdentifier
		}
	}

	if readError != nil {
		resolver.logger.Debug(
			resolvedFromFallbackMessageConstant,
			zap.String(logFieldRemoteNameConstant, remoteName),
			zap.String(logFieldRepositoryPathConstant, options.RepositoryPath),
			zap.String(logFieldIdentifierConstant, fallbackIdentifier),
			zap.Error(readError),
		)
		return Resolution{
			Identifier:  fallbackIdentifier,
			Source:      ResolutionSourceFallback,
			RemoteURL:   strings.TrimSpace(remoteURL),
			LookupError: readError,
		}
	}

	resolver.logger.Debug(
		resolvedFromRemoteMessageConstant,
		zap.String(logFieldRemoteNameConstant, remoteName),
		zap.String(logFieldRemoteURLConstant, remoteURL),
		zap.String(logFieldIdentifierConstant, identifier),
	)
	return Resolution{Identifier: identifier, Source: ResolutionSourceRemote, RemoteURL: strings.TrimSpace(remoteURL)}
}
