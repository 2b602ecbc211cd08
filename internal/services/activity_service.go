package services

import (
	"go.uber.org/zap"

	"budgetly/internal/logger"
)

// activityService writes an audit trail of mutations to the structured log.
type activityService struct {
	log *zap.SugaredLogger
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService() ActivityServicer {
	return &activityService{log: logger.Named("activity")}
}

// Log records an activity event. It never fails the operation it describes.
func (s *activityService) Log(action, resourceType, resourceID string, changes map[string]interface{}) {
	fields := []interface{}{
		"action", action,
		"resource_type", resourceType,
	}
	if resourceID != "" {
		fields = append(fields, "resource_id", resourceID)
	}
	if len(changes) > 0 {
		fields = append(fields, "changes", changes)
	}
	s.log.Infow("activity", fields...)
}
