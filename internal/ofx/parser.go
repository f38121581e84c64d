// Package ofx converts OFX/QFX bank statements into the same transaction
// shape the CSV parser produces, so both sources feed one classification
// pipeline.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/kbencic/budgeteer/internal/model"
)

const dateLayout = "2006-01-02 15:04:05"

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocess fixes common formatting issues in OFX files.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Mixed-case SEVERITY values (must be INFO, WARN or ERROR).
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Missing closing angle brackets in SGML-style files.
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX statement and returns expense transactions:
// debits only, deduplicated by date, amount and description within the file.
func (p *Parser) ParseFile(reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	seen := make(map[string]bool)

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			currency := fmt.Sprintf("%v", stmt.CurDef)
			p.collectStatement(stmt.BankTranList, currency, seen, &transactions)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			currency := fmt.Sprintf("%v", stmt.CurDef)
			p.collectStatement(stmt.BankTranList, currency, seen, &transactions)
		}
	}

	slog.Info("Parsed OFX statement",
		"expense_transactions", len(transactions))

	return transactions, nil
}

func (p *Parser) collectStatement(list *ofxgo.TransactionList, currency string, seen map[string]bool, out *[]model.Transaction) {
	if list == nil {
		return
	}
	for _, ofxTx := range list.Transactions {
		txn, ok := p.convert(ofxTx, currency)
		if !ok {
			continue
		}
		hash := txn.Hash()
		if seen[hash] {
			continue
		}
		seen[hash] = true
		*out = append(*out, txn)
	}
}

// convert maps one OFX transaction onto the statement model. Credits are
// dropped; only expenses flow into analysis.
func (p *Parser) convert(ofxTx ofxgo.Transaction, currency string) (model.Transaction, bool) {
	amount, _ := ofxTx.TrnAmt.Float64()
	if amount >= 0 {
		return model.Transaction{}, false
	}

	posted := ofxTx.DtPosted.Time.Format(dateLayout)

	return model.Transaction{
		Type:          fmt.Sprintf("%v", ofxTx.TrnType),
		Product:       "OFX",
		StartedDate:   posted,
		CompletedDate: posted,
		Description:   p.extractDescription(ofxTx),
		Amount:        amount,
		Currency:      currency,
		State:         model.StateCompleted,
	}, true
}

// extractDescription prefers the payee name, then the transaction name, then
// the memo, with light cleanup of processor prefixes.
func (p *Parser) extractDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if name == "" && tx.Memo != "" {
		name = strings.TrimSpace(string(tx.Memo))
	}

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	return strings.TrimSpace(name)
}
