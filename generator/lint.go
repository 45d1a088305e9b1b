package generator

import "strings"

// CheckSyntax runs heuristic, non-parsing checks over the full script text.
// Every finding is a non-fatal warning; the returned order matches the check
// order here. Counting over the whole text means a mismatch split across
// snippet boundaries is still caught, at the cost of not localizing it.
func CheckSyntax(text string) []string {
	var warnings []string

	if strings.Count(text, "{") != strings.Count(text, "}") {
		warnings = append(warnings, "Mismatched curly braces")
	}
	if strings.Count(text, "(") != strings.Count(text, ")") {
		warnings = append(warnings, "Mismatched parentheses")
	}
	if strings.Contains(text, "function(") {
		warnings = append(warnings, "Missing space after function keyword")
	}
	if strings.Contains(text, "if(") {
		warnings = append(warnings, "Missing space after if keyword")
	}

	return warnings
}
