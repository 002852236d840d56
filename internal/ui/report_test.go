package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/readmesync/internal/ui"
)

func TestReportPrinterPrintUpdated(testInstance *testing.T) {
	output := &bytes.Buffer{}
	ui.NewReportPrinter(output).PrintUpdated("my-cool-project", "My Cool Project")

	require.Equal(testInstance, "README updated successfully\nRepo Name   : my-cool-project\nProject Name: My Cool Project\n", output.String())
}

func TestReportPrinterPrintPreview(testInstance *testing.T) {
	testCases := []struct {
		name           string
		diff           string
		expectedOutput string
	}{
		{
			name:           "with_changes",
			diff:           "--- README.md\n+++ README.md\n@@ -1 +1 @@\n-# Old\n+# 📁 Tool\n",
			expectedOutput: "--- README.md\n+++ README.md\n@@ -1 +1 @@\n-# Old\n+# 📁 Tool\nREADME dry run, nothing written\nRepo Name   : tool\nProject Name: Tool\n",
		},
		{
			name:           "without_changes",
			diff:           "",
			expectedOutput: "README is already up to date\nREADME dry run, nothing written\nRepo Name   : tool\nProject Name: Tool\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			output := &bytes.Buffer{}
			ui.NewReportPrinter(output).PrintPreview("tool", "Tool", testCase.diff)
			require.Equal(testInstance, testCase.expectedOutput, output.String())
		})
	}
}

func TestReportPrinterPrintResolutionAndLines(testInstance *testing.T) {
	output := &bytes.Buffer{}
	printer := ui.NewReportPrinter(output)
	printer.PrintResolution("project-name", "fallback", "Project Name")
	printer.PrintLines([]string{"├── a.txt", "└── b"})

	require.Equal(testInstance, "Repo Name   : project-name\nProject Name: Project Name\nSource      : fallback\n├── a.txt\n└── b\n", output.String())
}
