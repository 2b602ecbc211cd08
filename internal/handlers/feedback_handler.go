package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgetly/internal/models"
	"budgetly/internal/services"
)

// FeedbackHandler handles user feedback.
type FeedbackHandler struct {
	feedback services.FeedbackServicer
	activity services.ActivityServicer
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedback services.FeedbackServicer, activity services.ActivityServicer) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, activity: activity}
}

// SubmitFeedbackRequest represents the request payload for leaving feedback.
type SubmitFeedbackRequest struct {
	Name   string `json:"name" binding:"required,max=100" example:"Asha"`
	Email  string `json:"email" binding:"required,email" example:"asha@example.com"`
	Rating int    `json:"rating" binding:"rating" example:"5"`
	Text   string `json:"text" binding:"required,max=2000" example:"Love the bill reminders"`
}

// SubmitFeedback stores a feedback entry.
// @Summary     Leave feedback
// @Description Store feedback locally and forward it for delivery when configured
// @Tags        feedback
// @Accept      json
// @Produce     json
// @Param       request body SubmitFeedbackRequest true "Feedback"
// @Success     201 {object} map[string]models.Feedback "Feedback stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	entry, err := h.feedback.Submit(req.Name, req.Email, req.Rating, req.Text, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Log("SUBMIT_FEEDBACK", "feedback", "", map[string]interface{}{"rating": entry.Rating})

	c.JSON(http.StatusCreated, gin.H{"feedback": entry})
}

// GetFeedback lists stored feedback.
// @Summary     List feedback
// @Description List stored feedback in submission order
// @Tags        feedback
// @Produce     json
// @Security    AdminKey
// @Success     200 {object} map[string][]models.Feedback "Feedback entries"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /feedback [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	entries := h.feedback.List()
	if entries == nil {
		entries = []models.Feedback{}
	}
	c.JSON(http.StatusOK, gin.H{"feedback": entries})
}

// ClearFeedback removes all stored feedback.
// @Summary     Clear feedback
// @Description Remove all stored feedback
// @Tags        feedback
// @Security    AdminKey
// @Success     204 "Feedback cleared"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /feedback [delete]
func (h *FeedbackHandler) ClearFeedback(c *gin.Context) {
	if err := h.feedback.Clear(); err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Log("CLEAR_FEEDBACK", "feedback", "", nil)

	c.Status(http.StatusNoContent)
}
