// Package flags formats usage text for enumerated command-line flags.
package flags

import (
	"fmt"
	"strings"
)

const (
	choiceListOpenConstant               = "<"
	choiceListCloseConstant              = ">"
	choiceListSeparatorConstant          = "|"
	choiceUsageBareTemplateConstant      = "`%s`"
	choiceUsageDescribedTemplateConstant = "`%s` %s"
)

// FormatChoiceUsage renders `<a|B|c>` followed by description, upper-casing
// the default choice. Blank and repeated choices are dropped.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	renderedChoices := make([]string, 0, len(choices))
	renderedSet := make(map[string]bool, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		normalizedChoice := strings.ToLower(trimmedChoice)
		if len(normalizedChoice) == 0 || renderedSet[normalizedChoice] {
			continue
		}
		renderedSet[normalizedChoice] = true
		if normalizedChoice == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		renderedChoices = append(renderedChoices, trimmedChoice)
	}

	placeholder := choiceListOpenConstant + strings.Join(renderedChoices, choiceListSeparatorConstant) + choiceListCloseConstant
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(choiceUsageBareTemplateConstant, placeholder)
	}
	return fmt.Sprintf(choiceUsageDescribedTemplateConstant, placeholder, trimmedDescription)
}
