package utils_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/readmesync/internal/utils"
)

const (
	testEnvironmentPrefixConstant                  = "TESTREADMESYNC"
	testOwnerEnvironmentVariableConstant           = "TESTREADMESYNC_README_OWNER"
	testIgnoreEnvironmentVariableConstant          = "TESTREADMESYNC_README_IGNORE"
	testOwnerKeyConstant                           = "readme.owner"
	testIgnoreKeyConstant                          = "readme.ignore"
	testDefaultOwnerConstant                       = "mnoukhej"
	testEmbeddedOwnerConstant                      = "embedded-owner"
	testFileOwnerConstant                          = "file-owner"
	testEnvironmentOwnerConstant                   = "environment-owner"
	testConfigFileNameConstant                     = "config.yaml"
	testConfigContentTemplateConstant              = "readme:\n  owner: %s\n"
	testConfigurationNameConstant                  = "config"
	testConfigurationTypeConstant                  = "yaml"
	testCaseDefaultsMessageConstant                = "defaults are applied"
	testCaseEmbeddedMessageConstant                = "embedded configuration overrides defaults"
	testCaseFileMessageConstant                    = "config file overrides embedded configuration"
	testCaseEnvironmentMessageConstant             = "environment overrides file"
	configurationLoaderSubtestNameTemplateConstant = "%d_%s"
)

type configurationFixture struct {
	Readme readmeConfigurationFixture `mapstructure:"readme"`
}

type readmeConfigurationFixture struct {
	Owner  string   `mapstructure:"owner"`
	Ignore []string `mapstructure:"ignore"`
}

func TestConfigurationLoaderLoadConfiguration(testInstance *testing.T) {
	testCases := []struct {
		name             string
		embeddedOwner    string
		fileOwner        string
		environmentOwner string
		expectedOwner    string
	}{
		{
			name:          testCaseDefaultsMessageConstant,
			expectedOwner: testDefaultOwnerConstant,
		},
		{
			name:          testCaseEmbeddedMessageConstant,
			embeddedOwner: testEmbeddedOwnerConstant,
			expectedOwner: testEmbeddedOwnerConstant,
		},
		{
			name:          testCaseFileMessageConstant,
			embeddedOwner: testEmbeddedOwnerConstant,
			fileOwner:     testFileOwnerConstant,
			expectedOwner: testFileOwnerConstant,
		},
		{
			name:             testCaseEnvironmentMessageConstant,
			embeddedOwner:    testEmbeddedOwnerConstant,
			fileOwner:        testFileOwnerConstant,
			environmentOwner: testEnvironmentOwnerConstant,
			expectedOwner:    testEnvironmentOwnerConstant,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(configurationLoaderSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			tempDirectory := testInstance.TempDir()
			configurationFilePath := ""
			if len(testCase.fileOwner) > 0 {
				configurationFilePath = filepath.Join(tempDirectory, testConfigFileNameConstant)
				configurationContent := fmt.Sprintf(testConfigContentTemplateConstant, testCase.fileOwner)
				require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o600))
			}
			if len(testCase.environmentOwner) > 0 {
				testInstance.Setenv(testOwnerEnvironmentVariableConstant, testCase.environmentOwner)
			}

			configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{tempDirectory})
			if len(testCase.embeddedOwner) > 0 {
				configurationLoader.SetEmbeddedConfiguration([]byte(fmt.Sprintf(testConfigContentTemplateConstant, testCase.embeddedOwner)), testConfigurationTypeConstant)
			}

			defaultValues := map[string]any{
				testOwnerKeyConstant:  testDefaultOwnerConstant,
				testIgnoreKeyConstant: []string{},
			}

			loadedConfiguration := configurationFixture{}
			metadata, loadError := configurationLoader.LoadConfiguration(configurationFilePath, defaultValues, &loadedConfiguration)
			require.NoError(testInstance, loadError)
			require.Equal(testInstance, testCase.expectedOwner, loadedConfiguration.Readme.Owner)
			require.Equal(testInstance, len(testCase.embeddedOwner) > 0, metadata.EmbeddedDefaultsUsed)
			require.Equal(testInstance, testEnvironmentPrefixConstant, metadata.EnvironmentKeyPrefix)

			if len(configurationFilePath) > 0 {
				require.Equal(testInstance, configurationFilePath, metadata.ConfigFileUsed)
			} else {
				require.Empty(testInstance, metadata.ConfigFileUsed)
			}
		})
	}
}

func TestConfigurationLoaderSearchesWorkingDirectory(testInstance *testing.T) {
	searchDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(searchDirectory, testConfigFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(fmt.Sprintf(testConfigContentTemplateConstant, testFileOwnerConstant)), 0o600))

	configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{searchDirectory})

	loadedConfiguration := configurationFixture{}
	metadata, loadError := configurationLoader.LoadConfiguration("", map[string]any{testOwnerKeyConstant: testDefaultOwnerConstant}, &loadedConfiguration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, testFileOwnerConstant, loadedConfiguration.Readme.Owner)
	require.Equal(testInstance, configurationFilePath, metadata.ConfigFileUsed)
}

func TestConfigurationLoaderSplitsEnvironmentLists(testInstance *testing.T) {
	testInstance.Setenv(testIgnoreEnvironmentVariableConstant, "vendor,node_modules")

	configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{testInstance.TempDir()})

	loadedConfiguration := configurationFixture{}
	_, loadError := configurationLoader.LoadConfiguration("", map[string]any{testIgnoreKeyConstant: []string{}}, &loadedConfiguration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, []string{"vendor", "node_modules"}, loadedConfiguration.Readme.Ignore)
}

func TestConfigurationLoaderRejectsMissingExplicitFile(testInstance *testing.T) {
	configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	loadedConfiguration := configurationFixture{}
	_, loadError := configurationLoader.LoadConfiguration(filepath.Join(testInstance.TempDir(), "absent.yaml"), nil, &loadedConfiguration)
	require.Error(testInstance, loadError)
}
