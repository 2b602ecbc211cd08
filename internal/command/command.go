// Package command turns short natural-language phrases into structured
// transaction requests. Parsing happens before the core is called, so input
// that does not match never reaches the transaction log.
package command

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
)

// DescriptionPrefix is prepended to the raw phrase to form the transaction description.
const DescriptionPrefix = "Added via voice: "

// Example is a phrase the parser accepts.
const Example = "add expense 500 for food"

var pattern = regexp.MustCompile(`add (expense|income) (\d+(?:\.\d+)?) for (\w+)`)

// Request is a parsed command ready to be appended to the transaction log.
type Request struct {
	Type        models.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
}

// Parse matches input against "add (expense|income) <amount> for <category>",
// ignoring case. The match may appear anywhere in the phrase. Type and
// category are lowercased; the description keeps the trimmed phrase as typed.
func Parse(input string) (*Request, error) {
	raw := strings.TrimSpace(input)
	m := pattern.FindStringSubmatch(strings.ToLower(raw))
	if m == nil {
		return nil, apperrors.ErrUnrecognizedCommand
	}

	amount, err := decimal.NewFromString(m[2])
	if err != nil || !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrUnrecognizedCommand, "amount must be greater than zero")
	}

	return &Request{
		Type:        models.TransactionType(m[1]),
		Amount:      amount,
		Category:    m[3],
		Description: DescriptionPrefix + raw,
	}, nil
}
