package services

import (
	"errors"
	"testing"

	"budgetly/internal/models"
	"budgetly/internal/storage"
	"budgetly/internal/testutil"
)

type recordingNotifier struct {
	delivered []models.Feedback
	err       error
}

func (n *recordingNotifier) NotifyFeedback(feedback models.Feedback) error {
	n.delivered = append(n.delivered, feedback)
	return n.err
}

func TestSubmitFeedback(t *testing.T) {
	t.Run("stores_and_notifies", func(t *testing.T) {
		store := testutil.NewMemoryStore(t)
		notifier := &recordingNotifier{}
		svc, err := NewFeedbackService(store, notifier)
		testutil.AssertNoError(t, err)

		entry, err := svc.Submit("Asha", "asha@example.com", 5, "Love the alerts", testutil.MustTime(t, "2024-01-02T10:00:00Z"))
		testutil.AssertNoError(t, err)
		if entry.Rating != 5 {
			t.Errorf("expected rating 5, got %d", entry.Rating)
		}
		if len(notifier.delivered) != 1 {
			t.Errorf("expected 1 delivery, got %d", len(notifier.delivered))
		}

		var saved []models.Feedback
		ok, err := store.Load(storage.KeyFeedback, &saved)
		testutil.AssertNoError(t, err)
		if !ok || len(saved) != 1 {
			t.Fatalf("expected 1 persisted entry, got %d", len(saved))
		}
	})

	t.Run("delivery_failure_keeps_entry", func(t *testing.T) {
		notifier := &recordingNotifier{err: errors.New("broker down")}
		svc, err := NewFeedbackService(testutil.NewMemoryStore(t), notifier)
		testutil.AssertNoError(t, err)

		_, err = svc.Submit("Ravi", "ravi@example.com", 3, "ok", testutil.MustTime(t, "2024-01-02T10:00:00Z"))
		testutil.AssertNoError(t, err)
		if len(svc.List()) != 1 {
			t.Error("expected entry to be kept")
		}
	})

	invalid := []struct {
		name   string
		who    string
		email  string
		rating int
		text   string
	}{
		{"missing_name", "", "a@example.com", 3, "hi"},
		{"bad_email", "A", "not-an-email", 3, "hi"},
		{"missing_text", "A", "a@example.com", 3, ""},
		{"rating_too_high", "A", "a@example.com", 6, "hi"},
		{"negative_rating", "A", "a@example.com", -1, "hi"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := NewFeedbackService(testutil.NewMemoryStore(t), nil)
			testutil.AssertNoError(t, err)

			_, err = svc.Submit(tc.who, tc.email, tc.rating, tc.text, testutil.MustTime(t, "2024-01-02T10:00:00Z"))
			testutil.AssertAppError(t, err, "VALIDATION_ERROR")
			if len(svc.List()) != 0 {
				t.Error("expected no stored feedback")
			}
		})
	}
}

func TestClearFeedback(t *testing.T) {
	store := testutil.NewMemoryStore(t)
	svc, err := NewFeedbackService(store, nil)
	testutil.AssertNoError(t, err)
	_, err = svc.Submit("Asha", "asha@example.com", 4, "nice", testutil.MustTime(t, "2024-01-02T10:00:00Z"))
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.Clear())
	if len(svc.List()) != 0 {
		t.Error("expected feedback to be cleared")
	}

	reloaded, err := NewFeedbackService(store, nil)
	testutil.AssertNoError(t, err)
	if len(reloaded.List()) != 0 {
		t.Error("expected cleared feedback to stay cleared after reload")
	}
}
