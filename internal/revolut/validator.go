package revolut

import (
	"fmt"
	"strings"
)

// ExpectedHeaders are the column names a Revolut statement export must carry.
var ExpectedHeaders = []string{
	"Type", "Product", "Started Date", "Completed Date", "Description",
	"Amount", "Fee", "Currency", "State", "Balance",
}

// ValidationResult is the outcome of a structural CSV pre-check. Errors make
// the file unusable; warnings do not block analysis.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// Validate checks raw CSV text for a non-empty body and the presence of all
// expected header names. The membership check ignores case and column order.
// It does not inspect row contents; that is the parser's job.
func Validate(csvText string) ValidationResult {
	result := ValidationResult{}

	lines := nonEmptyLines(csvText)
	if len(lines) == 0 {
		result.Errors = append(result.Errors, "CSV file is empty")
		return result
	}

	headers := splitHeader(lines[0])

	var missing []string
	for _, expected := range ExpectedHeaders {
		if !containsFold(headers, expected) {
			missing = append(missing, expected)
		}
	}
	if len(missing) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")))
		return result
	}

	var extra []string
	for _, header := range headers {
		if !containsFold(ExpectedHeaders, header) {
			extra = append(extra, header)
		}
	}
	if len(extra) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Extra columns found: %s", strings.Join(extra, ", ")))
	}

	if len(lines) < 2 {
		result.Warnings = append(result.Warnings, "CSV file has no transaction data")
	}

	result.IsValid = true
	return result
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
