package projectname_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/readmesync/internal/projectname"
)

func TestFormatTitle(testInstance *testing.T) {
	testCases := []struct {
		name          string
		identifier    string
		expectedTitle string
	}{
		{name: "camel_case", identifier: "myCoolProject", expectedTitle: "My Cool Project"},
		{name: "snake_case", identifier: "my_cool_project", expectedTitle: "My Cool Project"},
		{name: "kebab_case", identifier: "my-cool-project", expectedTitle: "My Cool Project"},
		{name: "mixed_delimiters", identifier: "my_cool-Project", expectedTitle: "My Cool Project"},
		{name: "repeated_delimiters", identifier: "my__cool--project", expectedTitle: "My Cool Project"},
		{name: "uppercase_run_not_split", identifier: "HTTPServer", expectedTitle: "Httpserver"},
		{name: "uppercase_word_lowered", identifier: "README-tool", expectedTitle: "Readme Tool"},
		{name: "numeric_token", identifier: "project-2024", expectedTitle: "Project 2024"},
		{name: "placeholder", identifier: "project-name", expectedTitle: "Project Name"},
		{name: "empty", identifier: "", expectedTitle: ""},
		{name: "only_delimiters", identifier: "-_-", expectedTitle: ""},
		{name: "non_ascii", identifier: "élan-vital", expectedTitle: "Élan Vital"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedTitle, projectname.FormatTitle(testCase.identifier))
		})
	}
}
