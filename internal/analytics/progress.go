package analytics

import (
	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

// Band classifies budget utilization for display.
type Band string

const (
	BandUnset    Band = "unset"
	BandOK       Band = "ok"
	BandCaution  Band = "caution"
	BandCritical Band = "critical"
)

var (
	cautionThreshold  = decimal.NewFromInt(50)
	criticalThreshold = decimal.NewFromInt(80)
)

// Progress summarizes the active period for dashboards.
type Progress struct {
	Amount    decimal.Decimal `json:"amount"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Savings   decimal.Decimal `json:"savings"`
	// Percent is uncapped; DisplayPercent is capped at 100 for progress bars.
	Percent        decimal.Decimal `json:"percent"`
	DisplayPercent decimal.Decimal `json:"display_percent"`
	Band           Band            `json:"band"`
}

// ProgressOf computes the progress summary of a budget period.
func ProgressOf(period models.BudgetPeriod) Progress {
	p := Progress{
		Amount:         period.Amount,
		Spent:          period.Spent,
		Remaining:      period.Remaining(),
		Savings:        period.Savings,
		Percent:        decimal.Zero,
		DisplayPercent: decimal.Zero,
		Band:           BandUnset,
	}
	if !period.Amount.IsPositive() {
		return p
	}

	p.Percent = period.Utilization().Round(2)
	p.DisplayPercent = decimal.Min(p.Percent, hundred)
	switch {
	case p.DisplayPercent.LessThan(cautionThreshold):
		p.Band = BandOK
	case p.DisplayPercent.LessThan(criticalThreshold):
		p.Band = BandCaution
	default:
		p.Band = BandCritical
	}
	return p
}
