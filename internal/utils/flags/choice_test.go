package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(testInstance *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "RemoteReaderDefault",
			defaultChoice:  "git",
			choices:        []string{"git", "gogit"},
			description:    "Remote reader implementation.",
			expectedOutput: "`<GIT|gogit>` Remote reader implementation.",
		},
		{
			name:           "LogFormatSecondChoice",
			defaultChoice:  "console",
			choices:        []string{"structured", "console"},
			description:    "Log output format.",
			expectedOutput: "`<structured|CONSOLE>` Log output format.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "git",
			choices:        []string{"git", "gogit"},
			expectedOutput: "`<GIT|gogit>`",
		},
		{
			name:           "DuplicatesAndBlanksDropped",
			defaultChoice:  "gogit",
			choices:        []string{" gogit ", "GoGit", "", "git"},
			description:    "Pick one.",
			expectedOutput: "`<GOGIT|git>` Pick one.",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			require.Equal(subTest, testCase.expectedOutput, FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description))
		})
	}
}
