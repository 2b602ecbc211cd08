package services

import (
	"budgetly/internal/storage"
)

// Core bundles the services that make up the bookkeeping core, all backed
// by one persistence gateway.
type Core struct {
	Ledger       LedgerServicer
	Transactions TransactionServicer
	Bills        BillServicer
	Analytics    AnalyticsServicer
	Alerts       AlertServicer
	Feedback     FeedbackServicer
	Activity     ActivityServicer
}

// NewCore loads saved state from store and wires the services together.
// notifier may be nil.
func NewCore(store storage.Gateway, notifier FeedbackNotifier) (*Core, error) {
	ledger, err := NewLedgerService(store)
	if err != nil {
		return nil, err
	}
	transactions, err := NewTransactionService(store, ledger)
	if err != nil {
		return nil, err
	}
	bills, err := NewBillService(store, transactions)
	if err != nil {
		return nil, err
	}
	feedback, err := NewFeedbackService(store, notifier)
	if err != nil {
		return nil, err
	}

	return &Core{
		Ledger:       ledger,
		Transactions: transactions,
		Bills:        bills,
		Analytics:    NewAnalyticsService(transactions, ledger),
		Alerts:       NewAlertService(ledger, bills),
		Feedback:     feedback,
		Activity:     NewActivityService(),
	}, nil
}
