// Package storage defines the persistence gateway the bookkeeping core saves
// its state through. Implementations live in the subpackages; each stores a
// JSON document per key.
package storage

import (
	"encoding/json"
	"fmt"
	"time"
)

// Keys under which the core persists its state.
const (
	KeyBudget       = "budget"
	KeyTransactions = "transactions"
	KeyPendingBills = "pendingBills"
	KeyFeedback     = "feedback"
)

// DefaultTimeout bounds a single call against a networked backend.
const DefaultTimeout = 5 * time.Second

// Gateway loads and saves named records. Calls are synchronous: when Save
// returns nil the value is durable.
type Gateway interface {
	// Save replaces the record stored under key.
	Save(key string, value any) error
	// Load decodes the record stored under key into dest. It reports false
	// with a nil error when nothing has been stored yet.
	Load(key string, dest any) (bool, error)
}

// Encode serializes a value into the document format shared by all gateways.
func Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return data, nil
}

// Decode deserializes a stored document into dest.
func Decode(data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}
