package readme_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/readmesync/internal/readme"
)

func TestDefaultConfigurationValues(testInstance *testing.T) {
	defaultValues := readme.DefaultConfigurationValues("readme")

	require.Equal(testInstance, "README.md", defaultValues["readme.path"])
	require.Equal(testInstance, ".", defaultValues["readme.root"])
	require.Equal(testInstance, "mnoukhej", defaultValues["readme.owner"])
	require.Equal(testInstance, false, defaultValues["readme.owner_from_remote"])
	require.Equal(testInstance, "origin", defaultValues["readme.remote"])
	require.Equal(testInstance, "git", defaultValues["readme.remote_reader"])
	require.Equal(testInstance, "project-name", defaultValues["readme.fallback_identifier"])
	require.Equal(testInstance, []string{}, defaultValues["readme.ignore"])
	require.Equal(testInstance, false, defaultValues["readme.dry_run"])
	require.Len(testInstance, defaultValues, 9)
}

func TestConfigurationSanitize(testInstance *testing.T) {
	sanitized := readme.Configuration{
		DocumentPath:    "  docs/README.md ",
		Owner:           " ",
		RemoteReader:    " GoGit ",
		IgnoredNames:    []string{" vendor ", "", "node_modules"},
		OwnerFromRemote: true,
	}.Sanitize()

	require.Equal(testInstance, readme.Configuration{
		DocumentPath:       "docs/README.md",
		TreeRoot:           readme.DefaultTreeRoot,
		Owner:              readme.DefaultOwner,
		OwnerFromRemote:    true,
		RemoteName:         "origin",
		RemoteReader:       "gogit",
		FallbackIdentifier: "project-name",
		IgnoredNames:       []string{"vendor", "node_modules"},
	}, sanitized)
}

func TestConfigurationOptions(testInstance *testing.T) {
	configuration := readme.DefaultConfiguration()
	configuration.DryRun = true

	require.Equal(testInstance, readme.Options{
		DocumentPath:       readme.DefaultDocumentPath,
		TreeRoot:           readme.DefaultTreeRoot,
		RemoteName:         "origin",
		FallbackIdentifier: "project-name",
		Owner:              readme.DefaultOwner,
		DryRun:             true,
	}, configuration.Options())
}
