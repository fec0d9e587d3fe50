package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
	"github.com/Liyanipatel27/learning-management-system-sub001/pkg/logger"
)

type ReportService interface {
	StudentProgressReport(ctx context.Context) ([]models.StudentProgressRow, error)
	StudentGrades(ctx context.Context, studentID uuid.UUID) ([]models.CourseGrades, error)
	CourseSummaries(ctx context.Context, studentID uuid.UUID) ([]models.CourseSummary, error)
}

type ReportHandler struct {
	log     logger.Log
	service ReportService
}

func NewReportHandler(log logger.Log, service ReportService) *ReportHandler {
	return &ReportHandler{log: log, service: service}
}

func (h *ReportHandler) StudentProgressReport(c *gin.Context) {
	rows, err := h.service.StudentProgressReport(c.Request.Context())
	if err != nil {
		h.log.ErrorErr("students progress report failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": rows})
}

func (h *ReportHandler) StudentGrades(c *gin.Context) {
	studentID, ok := pathUUID(c, "student_id")
	if !ok {
		return
	}
	grades, err := h.service.StudentGrades(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grades": grades})
}

func (h *ReportHandler) CourseSummaries(c *gin.Context) {
	studentID, ok := pathUUID(c, "student_id")
	if !ok {
		return
	}
	summaries, err := h.service.CourseSummaries(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": summaries})
}
