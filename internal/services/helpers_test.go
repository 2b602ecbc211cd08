package services

import (
	"testing"

	"budgetly/internal/logger"
	"budgetly/internal/storage"
	"budgetly/internal/testutil"
)

func init() {
	logger.Init("test")
}

type core struct {
	ledger       LedgerServicer
	transactions TransactionServicer
	bills        BillServicer
}

// newCore wires the ledger, log and bill tracker over store.
func newCore(t *testing.T, store storage.Gateway) core {
	t.Helper()

	ledger, err := NewLedgerService(store)
	testutil.AssertNoError(t, err)
	transactions, err := NewTransactionService(store, ledger)
	testutil.AssertNoError(t, err)
	bills, err := NewBillService(store, transactions)
	testutil.AssertNoError(t, err)

	return core{ledger: ledger, transactions: transactions, bills: bills}
}
