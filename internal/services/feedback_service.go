package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/models"
	"budgetly/internal/storage"
)

var validate = validator.New()

// feedbackService keeps the feedback log. It shares no state with the budget.
type feedbackService struct {
	store    storage.Gateway
	notifier FeedbackNotifier
	entries  []models.Feedback
}

// NewFeedbackService creates a FeedbackServicer. notifier may be nil.
func NewFeedbackService(store storage.Gateway, notifier FeedbackNotifier) (FeedbackServicer, error) {
	s := &feedbackService{store: store, notifier: notifier}
	if _, err := store.Load(storage.KeyFeedback, &s.entries); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return s, nil
}

// Submit stores a feedback entry and then forwards it to the notifier.
// Delivery failures are logged; the local copy is kept either way.
func (s *feedbackService) Submit(name, email string, rating int, text string, timestamp time.Time) (*models.Feedback, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	text = strings.TrimSpace(text)

	if name == "" || email == "" || text == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "name, email and feedback text are required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "email address is not valid")
	}
	if rating < 0 || rating > models.MaxRating {
		return nil, apperrors.WithMessage(apperrors.ErrValidation,
			fmt.Sprintf("rating must be between 0 and %d", models.MaxRating))
	}
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	entry := models.Feedback{
		Name:      name,
		Email:     email,
		Rating:    rating,
		Text:      text,
		Timestamp: timestamp.UTC(),
	}
	s.entries = append(s.entries, entry)
	if err := s.persist(); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyFeedback(entry); err != nil {
			logger.Named("feedback").Warnw("failed to deliver feedback", "error", err, "email", entry.Email)
		}
	}
	return &entry, nil
}

// List returns a copy of the stored feedback in submission order.
func (s *feedbackService) List() []models.Feedback {
	out := make([]models.Feedback, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear removes all stored feedback.
func (s *feedbackService) Clear() error {
	s.entries = nil
	return s.persist()
}

func (s *feedbackService) persist() error {
	entries := s.entries
	if entries == nil {
		entries = []models.Feedback{}
	}
	if err := s.store.Save(storage.KeyFeedback, entries); err != nil {
		logger.Named("feedback").Warnw("failed to persist feedback", "error", err)
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
