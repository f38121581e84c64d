// Package revolut parses Revolut account statement CSV exports.
package revolut

import (
	"strconv"
	"strings"

	"github.com/kbencic/budgeteer/internal/model"
)

// Parser turns raw CSV text into expense transactions.
type Parser struct{}

// NewParser creates a new statement parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts CSV text into transactions, keeping only rows whose state is
// COMPLETED and whose amount is strictly negative. Malformed rows degrade to
// zeroed fields rather than producing errors; blank lines are skipped.
func (p *Parser) Parse(csvText string) []model.Transaction {
	lines := nonEmptyLines(csvText)
	if len(lines) == 0 {
		return nil
	}

	headers := splitHeader(lines[0])
	var transactions []model.Transaction

	for _, line := range lines[1:] {
		values := splitRow(line)

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}

		amount := parseAmount(row["Amount"])
		state := row["State"]

		if state != model.StateCompleted || amount >= 0 {
			continue
		}

		transactions = append(transactions, model.Transaction{
			Type:          row["Type"],
			Product:       row["Product"],
			StartedDate:   row["Started Date"],
			CompletedDate: row["Completed Date"],
			Description:   row["Description"],
			Amount:        amount,
			Fee:           parseAmount(row["Fee"]),
			Currency:      row["Currency"],
			State:         state,
			Balance:       parseAmount(row["Balance"]),
		})
	}

	return transactions
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitHeader(line string) []string {
	parts := strings.Split(line, ",")
	headers := make([]string, len(parts))
	for i, part := range parts {
		headers[i] = strings.TrimSpace(part)
	}
	return headers
}

// splitRow splits one data row on commas, honoring double-quoted fields.
// Quotes toggle state; commas inside quotes are preserved. Escaped quotes
// ("") are not supported by the export format.
func splitRow(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))

	return values
}

// parseAmount parses a numeric field, defaulting to 0 when absent or
// non-numeric.
func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
