package models

import "github.com/shopspring/decimal"

// Bill is a pending obligation. It leaves the pending set when settled.
type Bill struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate Date            `json:"due_date"`
	Paid    bool            `json:"paid"`
}

// BillDue pairs a pending bill with its position and the days left until it is due.
type BillDue struct {
	Index        int  `json:"index"`
	Bill         Bill `json:"bill"`
	DaysUntilDue int  `json:"days_until_due"`
}

// DueTomorrow reports whether the bill falls due in exactly one day.
func (b BillDue) DueTomorrow() bool {
	return b.DaysUntilDue == 1
}
