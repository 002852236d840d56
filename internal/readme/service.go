package readme

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/readmesync/internal/gitrepo"
	"github.com/temirov/readmesync/internal/projectname"
)

const (
	fileSystemMissingMessageConstant    = "filesystem not configured"
	resolverMissingMessageConstant      = "project name resolver not configured"
	treeGeneratorMissingMessageConstant = "tree generator not configured"
	documentNotUTF8MessageConstant      = "document is not valid UTF-8"
	readDocumentErrorTemplateConstant   = "unable to read %s: %w"
	decodeDocumentErrorTemplateConstant = "unable to decode %s: %w"
	generateTreeErrorTemplateConstant   = "unable to generate tree for %s: %w"
	updateCommandsErrorTemplateConstant = "unable to update commands in %s: %w"
	writeDocumentErrorTemplateConstant  = "unable to write %s: %w"
	temporaryFilePatternConstant        = ".readmesync-*"
	diffContextLinesConstant            = 3
	documentUpdatedMessageConstant      = "document updated"
	documentPreviewedMessageConstant    = "document update previewed"
	ownerFromRemoteMessageConstant      = "clone owner derived from remote"
	logFieldDocumentPathConstant        = "document_path"
	logFieldIdentifierConstant          = "identifier"
	logFieldTitleConstant               = "title"
	logFieldSourceConstant              = "identifier_source"
	logFieldChangedConstant             = "changed"
	logFieldOwnerConstant               = "owner"
	logFieldTreeLineCountConstant       = "tree_line_count"
)

// ErrFileSystemNotConfigured indicates the service was built without a filesystem.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// ErrResolverNotConfigured indicates the service was built without a name resolver.
var ErrResolverNotConfigured = errors.New(resolverMissingMessageConstant)

// ErrTreeGeneratorNotConfigured indicates the service was built without a tree generator.
var ErrTreeGeneratorNotConfigured = errors.New(treeGeneratorMissingMessageConstant)

// ErrDocumentNotUTF8 indicates the document could not be decoded as UTF-8 text.
var ErrDocumentNotUTF8 = errors.New(documentNotUTF8MessageConstant)

// NameResolver resolves the repository identifier.
type NameResolver interface {
	Resolve(executionContext context.Context, options projectname.ResolveOptions) projectname.Resolution
}

// TreeGenerator lists a directory as tree lines.
type TreeGenerator interface {
	Generate(rootPath string) ([]string, error)
}

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	FileSystem    afero.Fs
	NameResolver  NameResolver
	TreeGenerator TreeGenerator
	Logger        *zap.Logger
}

// Options configure a single document update.
type Options struct {
	DocumentPath       string
	TreeRoot           string
	RepositoryPath     string
	RemoteName         string
	FallbackIdentifier string
	Owner              string
	OwnerFromRemote    bool
	DryRun             bool
}

// Result captures the outcome of a document update.
type Result struct {
	DocumentPath string
	Resolution   projectname.Resolution
	Title        string
	Owner        string
	Changed      bool
	Written      bool
	Diff         string
}

// Service rewrites a README's title, commands and tree.
type Service struct {
	fileSystem    afero.Fs
	nameResolver  NameResolver
	treeGenerator TreeGenerator
	logger        *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if dependencies.NameResolver == nil {
		return nil, ErrResolverNotConfigured
	}
	if dependencies.TreeGenerator == nil {
		return nil, ErrTreeGeneratorNotConfigured
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fileSystem:    dependencies.FileSystem,
		nameResolver:  dependencies.NameResolver,
		treeGenerator: dependencies.TreeGenerator,
		logger:        logger,
	}, nil
}

// Update resolves the project name, applies the title, command and tree edits
// in that order, and writes the document back unless DryRun is set.
func (service *Service) Update(executionContext context.Context, options Options) (Result, error) {
	sanitizedOptions := options.sanitize()

	resolution := service.nameResolver.Resolve(executionContext, projectname.ResolveOptions{
		RepositoryPath:     sanitizedOptions.RepositoryPath,
		RemoteName:         sanitizedOptions.RemoteName,
		FallbackIdentifier: sanitizedOptions.FallbackIdentifier,
	})
	projectTitle := projectname.FormatTitle(resolution.Identifier)
	owner := service.resolveOwner(sanitizedOptions, resolution)

	originalContent, documentMode, readError := service.readDocument(sanitizedOptions.DocumentPath)
	if readError != nil {
		return Result{}, readError
	}

	treeLines, generateError := service.treeGenerator.Generate(sanitizedOptions.TreeRoot)
	if generateError != nil {
		return Result{}, fmt.Errorf(generateTreeErrorTemplateConstant, sanitizedOptions.TreeRoot, generateError)
	}

	updatedContent := UpdateTitle(originalContent, projectTitle)
	updatedContent, commandsError := UpdateCommands(updatedContent, resolution.Identifier, owner)
	if commandsError != nil {
		return Result{}, fmt.Errorf(updateCommandsErrorTemplateConstant, sanitizedOptions.DocumentPath, commandsError)
	}
	updatedContent = UpdateTree(updatedContent, treeLines)

	result := Result{
		DocumentPath: sanitizedOptions.DocumentPath,
		Resolution:   resolution,
		Title:        projectTitle,
		Owner:        owner,
		Changed:      updatedContent != originalContent,
	}

	if sanitizedOptions.DryRun {
		result.Diff = unifiedDiff(sanitizedOptions.DocumentPath, originalContent, updatedContent)
		service.logResult(documentPreviewedMessageConstant, result, len(treeLines))
		return result, nil
	}

	if writeError := service.writeDocument(sanitizedOptions.DocumentPath, updatedContent, documentMode); writeError != nil {
		return Result{}, writeError
	}
	result.Written = true
	service.logResult(documentUpdatedMessageConstant, result, len(treeLines))
	return result, nil
}

func (service *Service) resolveOwner(options Options, resolution projectname.Resolution) string {
	if !options.OwnerFromRemote || resolution.FellBack() {
		return options.Owner
	}
	remoteURL, parseError := gitrepo.ParseRemoteURL(resolution.RemoteURL)
	if parseError != nil {
		return options.Owner
	}
	service.logger.Debug(ownerFromRemoteMessageConstant, zap.String(logFieldOwnerConstant, remoteURL.Owner))
	return remoteURL.Owner
}

func (service *Service) readDocument(documentPath string) (string, os.FileMode, error) {
	documentInfo, statError := service.fileSystem.Stat(documentPath)
	if statError != nil {
		return "", 0, fmt.Errorf(readDocumentErrorTemplateConstant, documentPath, statError)
	}

	contentBytes, readError := afero.ReadFile(service.fileSystem, documentPath)
	if readError != nil {
		return "", 0, fmt.Errorf(readDocumentErrorTemplateConstant, documentPath, readError)
	}
	if !utf8.Valid(contentBytes) {
		return "", 0, fmt.Errorf(decodeDocumentErrorTemplateConstant, documentPath, ErrDocumentNotUTF8)
	}
	return string(contentBytes), documentInfo.Mode().Perm(), nil
}

// writeDocument replaces the document through a temporary sibling file and a
// rename so readers never observe a partially written README.
func (service *Service) writeDocument(documentPath string, content string, documentMode os.FileMode) error {
	temporaryFile, createError := afero.TempFile(service.fileSystem, filepath.Dir(documentPath), temporaryFilePatternConstant)
	if createError != nil {
		return fmt.Errorf(writeDocumentErrorTemplateConstant, documentPath, createError)
	}
	temporaryPath := temporaryFile.Name()

	_, writeError := temporaryFile.WriteString(content)
	closeError := temporaryFile.Close()
	if writeError == nil {
		writeError = closeError
	}
	if writeError == nil {
		writeError = service.fileSystem.Chmod(temporaryPath, documentMode)
	}
	if writeError == nil {
		writeError = service.fileSystem.Rename(temporaryPath, documentPath)
	}
	if writeError != nil {
		_ = service.fileSystem.Remove(temporaryPath)
		return fmt.Errorf(writeDocumentErrorTemplateConstant, documentPath, writeError)
	}
	return nil
}

func (service *Service) logResult(message string, result Result, treeLineCount int) {
	service.logger.Info(
		message,
		zap.String(logFieldDocumentPathConstant, result.DocumentPath),
		zap.String(logFieldIdentifierConstant, result.Resolution.Identifier),
		zap.String(logFieldSourceConstant, string(result.Resolution.Source)),
		zap.String(logFieldTitleConstant, result.Title),
		zap.String(logFieldOwnerConstant, result.Owner),
		zap.Bool(logFieldChangedConstant, result.Changed),
		zap.Int(logFieldTreeLineCountConstant, treeLineCount),
	)
}

func unifiedDiff(documentPath string, originalContent string, updatedContent string) string {
	if originalContent == updatedContent {
		return ""
	}
	diffText, diffError := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(originalContent),
		B:        difflib.SplitLines(updatedContent),
		FromFile: documentPath,
		ToFile:   documentPath,
		Context:  diffContextLinesConstant,
	})
	if diffError != nil {
		return ""
	}
	return diffText
}

func (options Options) sanitize() Options {
	sanitized := options
	sanitized.DocumentPath = defaultIfBlank(options.DocumentPath, DefaultDocumentPath)
	sanitized.TreeRoot = defaultIfBlank(options.TreeRoot, DefaultTreeRoot)
	sanitized.RepositoryPath = strings.TrimSpace(options.RepositoryPath)
	sanitized.RemoteName = defaultIfBlank(options.RemoteName, projectname.DefaultRemoteName)
	sanitized.FallbackIdentifier = defaultIfBlank(options.FallbackIdentifier, projectname.DefaultFallbackIdentifier)
	sanitized.Owner = defaultIfBlank(options.Owner, DefaultOwner)
	return sanitized
}

func defaultIfBlank(value string, defaultValue string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return defaultValue
	}
	return trimmedValue
}
