package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
	"github.com/Liyanipatel27/learning-management-system-sub001/pkg/logger"
)

type ProgressService interface {
	CourseProgress(ctx context.Context, studentID, courseID uuid.UUID) (models.ProgressSummary, error)
	RecordContentProgress(ctx context.Context, studentID, courseID, contentID uuid.UUID, timeSpentDelta int, completed bool) error
	QuizForAttempt(ctx context.Context, courseID, moduleID uuid.UUID, fastTrack bool) ([]models.AttemptQuestion, error)
	SubmitQuiz(ctx context.Context, studentID, courseID, moduleID uuid.UUID, answers map[int]int, fastTrack bool) (*models.QuizResult, error)
	FinalizeCourseCompletion(ctx context.Context, studentID, courseID uuid.UUID) (models.CompletionStatus, error)
}

type ProgressHandler struct {
	log     logger.Log
	service ProgressService
}

func NewProgressHandler(log logger.Log, service ProgressService) *ProgressHandler {
	return &ProgressHandler{log: log, service: service}
}

func (h *ProgressHandler) CourseProgress(c *gin.Context) {
	studentID, ok := pathUUID(c, "student_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}

	summary, err := h.service.CourseProgress(c.Request.Context(), studentID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type contentProgressRequest struct {
	TimeSpentSeconds int  `json:"timeSpentSeconds"`
	Completed        bool `json:"completed"`
}

func (h *ProgressHandler) RecordContentProgress(c *gin.Context) {
	studentID, ok := pathUUID(c, "student_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	contentID, ok := pathUUID(c, "content_id")
	if !ok {
		return
	}
	var input contentProgressRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.RecordContentProgress(c.Request.Context(), studentID, courseID, contentID, input.TimeSpentSeconds, input.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// QuizForAttempt hands out the question set without answers or explanations.
func (h *ProgressHandler) QuizForAttempt(c *gin.Context) {
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	moduleID, ok := pathUUID(c, "module_id")
	if !ok {
		return
	}
	fastTrack := c.Query("fast_track") == "true"

	questions, err := h.service.QuizForAttempt(c.Request.Context(), courseID, moduleID, fastTrack)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

type submitQuizRequest struct {
	Answers   map[int]int `json:"answers" binding:"required"`
	FastTrack bool        `json:"fastTrack"`
}

func (h *ProgressHandler) SubmitQuiz(c *gin.Context) {
	studentID, ok := pathUUID(c, "student_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	moduleID, ok := pathUUID(c, "module_id")
	if !ok {
		return
	}
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.SubmitQuiz(c.Request.Context(), studentID, courseID, moduleID, req.Answers, req.FastTrack)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// FinalizeCompletion checks the whole course and stamps the completion date
// the first time everything is done. Safe to call repeatedly.
func (h *ProgressHandler) FinalizeCompletion(c *gin.Context) {
	studentID, ok := pathUUID(c, "student_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}

	status, err := h.service.FinalizeCourseCompletion(c.Request.Context(), studentID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
