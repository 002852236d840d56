package readme_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/readmesync/internal/readme"
)

const (
	testProjectTitleConstant = "My Cool Project"
	testIdentifierConstant   = "myCoolProject"
	testOwnerConstant        = "mnoukhej"
)

func TestUpdateTitle(testInstance *testing.T) {
	testCases := []struct {
		name            string
		content         string
		expectedContent string
	}{
		{
			name:            "FirstHeadingOnly",
			content:         "# Old Title\nintro\n# Old Title\n",
			expectedContent: "# 📁 My Cool Project\nintro\n# Old Title\n",
		},
		{
			name:            "IndentedSubheading",
			content:         "intro\n   ## Usage\nbody",
			expectedContent: "intro\n# 📁 My Cool Project\nbody",
		},
		{
			name:            "CarriageReturnsPreserved",
			content:         "# Old\r\nbody\r\n",
			expectedContent: "# 📁 My Cool Project\r\nbody\r\n",
		},
		{
			name:            "NoHeading",
			content:         "plain text\nwithout headings\n",
			expectedContent: "plain text\nwithout headings\n",
		},
		{
			name:            "EmptyDocument",
			content:         "",
			expectedContent: "",
		},
		{
			name:            "HeadingOnLastLineWithoutNewline",
			content:         "intro\n#Title",
			expectedContent: "intro\n# 📁 My Cool Project",
		},
		{
			name:            "LoneCarriageReturnDoesNotBreakLine",
			content:         "intro\r# Old\nbody\n",
			expectedContent: "intro\r# Old\nbody\n",
		},
		{
			name:            "UnicodeLineSeparatorDoesNotBreakLine",
			content:         "intro\u2028# Old\nbody\n",
			expectedContent: "intro\u2028# Old\nbody\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			require.Equal(subTest, testCase.expectedContent, readme.UpdateTitle(testCase.content, testProjectTitleConstant))
		})
	}
}

func TestUpdateCommands(testInstance *testing.T) {
	testCases := []struct {
		name            string
		content         string
		identifier      string
		expectedContent string
	}{
		{
			name:            "CloneAndChangeDirectory",
			content:         "git clone https://github.com/someone/old-name.git\ncd old-name\n",
			identifier:      testIdentifierConstant,
			expectedContent: "git clone https://github.com/mnoukhej/myCoolProject.git\ncd myCoolProject\n",
		},
		{
			name:            "EveryOccurrenceReplaced",
			content:         "git clone https://github.com/a/b.git && cd b\ncd docs\n",
			identifier:      testIdentifierConstant,
			expectedContent: "git clone https://github.com/mnoukhej/myCoolProject.git && cd myCoolProject\ncd myCoolProject\n",
		},
		{
			name:            "NoCommands",
			content:         "# Title\nNothing to run here.\n",
			identifier:      testIdentifierConstant,
			expectedContent: "# Title\nNothing to run here.\n",
		},
		{
			name:            "IdentifierInsertedLiterally",
			content:         "cd somewhere",
			identifier:      "$1project",
			expectedContent: "cd $1project",
		},
		{
			name:            "NonGitHubCloneUntouched",
			content:         "git clone https://gitlab.com/a/b.git",
			identifier:      testIdentifierConstant,
			expectedContent: "git clone https://gitlab.com/a/b.git",
		},
		{
			name:            "AsciiWordBoundaryAfterLetter",
			content:         "abcd foo",
			identifier:      testIdentifierConstant,
			expectedContent: "abcd foo",
		},
		{
			name:            "NonAsciiLetterIsWordBoundary",
			content:         "écd foo",
			identifier:      testIdentifierConstant,
			expectedContent: "écd myCoolProject",
		},
		{
			name:            "NoBreakSpaceIsNotSeparator",
			content:         "cd\u00a0foo bar",
			identifier:      testIdentifierConstant,
			expectedContent: "cd\u00a0foo bar",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			updatedContent, updateError := readme.UpdateCommands(testCase.content, testCase.identifier, testOwnerConstant)
			require.NoError(subTest, updateError)
			require.Equal(subTest, testCase.expectedContent, updatedContent)
		})
	}
}

func TestUpdateCommandsRequiresOwner(testInstance *testing.T) {
	_, updateError := readme.UpdateCommands("cd x", testIdentifierConstant, " ")
	require.Error(testInstance, updateError)
}

func TestTreeBlock(testInstance *testing.T) {
	require.Equal(
		testInstance,
		"<!-- TREE_START -->\n```\n├── a.txt\n└── b\n```\n<!-- TREE_END -->",
		readme.TreeBlock([]string{"├── a.txt", "└── b"}),
	)
}

func TestUpdateTree(testInstance *testing.T) {
	treeLines := []string{"├── a.txt", "└── b"}
	expectedBlock := readme.TreeBlock(treeLines)

	testCases := []struct {
		name            string
		content         string
		expectedContent string
	}{
		{
			name:            "ReplacesMarkedRegion",
			content:         "intro\n<!-- TREE_START -->\nstale\n<!-- TREE_END -->\noutro\n",
			expectedContent: "intro\n" + expectedBlock + "\noutro\n",
		},
		{
			name:            "AppendsWhenMarkersMissing",
			content:         "intro\n",
			expectedContent: "intro\n\n\n" + expectedBlock,
		},
		{
			name:            "AppendsWhenEndMarkerMissing",
			content:         "intro\n<!-- TREE_START -->\n",
			expectedContent: "intro\n<!-- TREE_START -->\n\n\n" + expectedBlock,
		},
		{
			name:            "OnlyFirstMarkersHonored",
			content:         "<!-- TREE_START -->old<!-- TREE_END -->middle<!-- TREE_START -->old<!-- TREE_END -->",
			expectedContent: expectedBlock + "middle<!-- TREE_START -->old<!-- TREE_END -->",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			require.Equal(subTest, testCase.expectedContent, readme.UpdateTree(testCase.content, treeLines))
		})
	}
}

func TestUpdateTreeIsIdempotent(testInstance *testing.T) {
	treeLines := []string{"├── a.txt", "└── b"}
	onceUpdated := readme.UpdateTree("# Title\n", treeLines)
	twiceUpdated := readme.UpdateTree(onceUpdated, treeLines)
	require.Equal(testInstance, onceUpdated, twiceUpdated)
}
