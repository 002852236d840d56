package gitrepo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/readmesync/internal/gitrepo"
)

func TestRepositoryIdentifier(testInstance *testing.T) {
	testCases := []struct {
		name               string
		remote             string
		expectedIdentifier string
	}{
		{name: "https_with_suffix", remote: "https://github.com/owner/my-tool.git", expectedIdentifier: "my-tool"},
		{name: "https_without_suffix", remote: "https://github.com/owner/my-tool", expectedIdentifier: "my-tool"},
		{name: "ssh_scp_style", remote: "git@github.com:owner/myCoolProject.git", expectedIdentifier: "myCoolProject"},
		{name: "ssh_url_style", remote: "ssh://git@github.com/owner/my_cool_project.git", expectedIdentifier: "my_cool_project"},
		{name: "suffix_removed_everywhere", remote: "https://example.com/owner/tool.github.io.git", expectedIdentifier: "toolhub.io"},
		{name: "trailing_newline", remote: "https://github.com/owner/tool.git\n", expectedIdentifier: "tool"},
		{name: "scp_without_slash", remote: "git@host:tool.git", expectedIdentifier: "git@host:tool"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedIdentifier, gitrepo.RepositoryIdentifier(testCase.remote))
		})
	}
}

func TestParseRemoteURL(testInstance *testing.T) {
	testCases := []struct {
		name           string
		remote         string
		expectedRemote gitrepo.RemoteURL
		expectError    bool
	}{
		{
			name:           "https",
			remote:         "https://github.com/owner/tool.git",
			expectedRemote: gitrepo.RemoteURL{Protocol: gitrepo.RemoteProtocolHTTPS, Host: "github.com", Owner: "owner", Repository: "tool"},
		},
		{
			name:           "scp",
			remote:         "git@github.com:owner/tool.git",
			expectedRemote: gitrepo.RemoteURL{Protocol: gitrepo.RemoteProtocolSSH, Host: "github.com", Owner: "owner", Repository: "tool"},
		},
		{
			name:           "ssh_url",
			remote:         "ssh://git@github.com/owner/tool.git",
			expectedRemote: gitrepo.RemoteURL{Protocol: gitrepo.RemoteProtocolSSH, Host: "github.com", Owner: "owner", Repository: "tool"},
		},
		{name: "empty", remote: "  ", expectError: true},
		{name: "unknown_protocol", remote: "file:///tmp/tool.git", expectError: true},
		{name: "missing_owner", remote: "git@github.com:tool.git", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			parsedRemote, parseError := gitrepo.ParseRemoteURL(testCase.remote)
			if testCase.expectError {
				require.Error(testInstance, parseError)
				require.IsType(testInstance, gitrepo.RemoteURLParseError{}, parseError)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedRemote, parsedRemote)
		})
	}
}

func TestFormatRemoteURL(testInstance *testing.T) {
	formatted, formatError := gitrepo.FormatRemoteURL(gitrepo.RemoteURL{Protocol: gitrepo.RemoteProtocolHTTPS, Host: "github.com", Owner: "mnoukhej", Repository: "tool"})
	require.NoError(testInstance, formatError)
	require.Equal(testInstance, "https://github.com/mnoukhej/tool.git", formatted)

	formatted, formatError = gitrepo.FormatRemoteURL(gitrepo.RemoteURL{Protocol: gitrepo.RemoteProtocolSSH, Host: "github.com", Owner: "mnoukhej", Repository: "tool"})
	require.NoError(testInstance, formatError)
	require.Equal(testInstance, "git@github.com:mnoukhej/tool.git", formatted)

	_, formatError = gitrepo.FormatRemoteURL(gitrepo.RemoteURL{Protocol: gitrepo.RemoteProtocol("ftp"), Host: "github.com", Owner: "mnoukhej", Repository: "tool"})
	require.IsType(testInstance, gitrepo.UnsupportedProtocolError{}, formatError)

	_, formatError = gitrepo.FormatRemoteURL(gitrepo.RemoteURL{Protocol: gitrepo.RemoteProtocolHTTPS, Host: "github.com", Repository: "tool"})
	require.IsType(testInstance, gitrepo.RemoteURLParseError{}, formatError)
}
