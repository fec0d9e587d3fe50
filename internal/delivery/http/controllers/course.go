package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
	"github.com/Liyanipatel27/learning-management-system-sub001/pkg/logger"
)

type CourseService interface {
	CreateCourse(ctx context.Context, subject string, teacherID uuid.UUID) (*models.Course, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	ListPublished(ctx context.Context) ([]models.Course, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error)
	AddChapter(ctx context.Context, courseID, teacherID uuid.UUID, title string) (*models.Course, error)
	AddModule(ctx context.Context, courseID, chapterID, teacherID uuid.UUID, title string) (*models.Course, error)
	AddContent(ctx context.Context, courseID, chapterID, moduleID, teacherID uuid.UUID, content models.Content) (*models.Course, error)
	SetModuleQuiz(ctx context.Context, courseID, chapterID, moduleID, teacherID uuid.UUID, quiz models.Quiz) (*models.Course, error)
	Publish(ctx context.Context, id, teacherID uuid.UUID) error
	Hide(ctx context.Context, id, teacherID uuid.UUID) error
	SearchCourses(ctx context.Context, query string, size int) ([]models.CoursePreview, int, error)
}

type CourseHandler struct {
	log     logger.Log
	service CourseService
}

func NewCourseHandler(l logger.Log, s CourseService) *CourseHandler {
	return &CourseHandler{
		log:     l,
		service: s,
	}
}

type newCourseRequest struct {
	Subject string `json:"subject" binding:"required"`
}

func (h *CourseHandler) NewCourse(c *gin.Context) {
	teacherID, ok := pathUUID(c, "teacher_id")
	if !ok {
		return
	}
	var input newCourseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), input.Subject, teacherID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) MyCourses(c *gin.Context) {
	teacherID, ok := pathUUID(c, "teacher_id")
	if !ok {
		return
	}
	courses, err := h.service.ListByTeacher(c.Request.Context(), teacherID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *CourseHandler) CourseByID(c *gin.Context) {
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	course, err := h.service.CourseByID(c.Request.Context(), courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// ListCourses serves the catalog. With ?query= it searches the index,
// otherwise it lists every published course.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	ctx := c.Request.Context()

	if q := c.Query("query"); q != "" {
		size := 10
		if s := c.Query("limit"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil || v <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			size = v
		}
		previews, total, err := h.service.SearchCourses(ctx, q, size)
		if err != nil {
			h.log.ErrorErr("course search failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search courses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": total, "courses": previews})
		return
	}

	courses, err := h.service.ListPublished(ctx)
	if err != nil {
		h.log.ErrorErr("list courses failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch courses"})
		return
	}
	previews := make([]models.CoursePreview, 0, len(courses))
	for _, course := range courses {
		previews = append(previews, models.CoursePreview{
			ID:          course.ID,
			Title:       course.Title,
			Subject:     course.Subject,
			Description: course.Description,
			IsPublished: course.IsPublished,
		})
	}
	c.JSON(http.StatusOK, gin.H{"total": len(previews), "courses": previews})
}

type addChapterRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *CourseHandler) AddChapter(c *gin.Context) {
	teacherID, ok := pathUUID(c, "teacher_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	var input addChapterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.service.AddChapter(c.Request.Context(), courseID, teacherID, input.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

type addModuleRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *CourseHandler) AddModule(c *gin.Context) {
	teacherID, ok := pathUUID(c, "teacher_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	chapterID, ok := pathUUID(c, "chapter_id")
	if !ok {
		return
	}
	var input addModuleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.service.AddModule(c.Request.Context(), courseID, chapterID, teacherID, input.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

type addContentRequest struct {
	Title        string `json:"title" binding:"required"`
	Type         string `json:"type" binding:"required"`
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	Description  string `json:"description"`
}

func (h *CourseHandler) AddContent(c *gin.Context) {
	teacherID, ok := pathUUID(c, "teacher_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	chapterID, ok := pathUUID(c, "chapter_id")
	if !ok {
		return
	}
	moduleID, ok := pathUUID(c, "module_id")
	if !ok {
		return
	}
	var input addContentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := models.Content{
		Title:        input.Title,
		Type:         input.Type,
		URL:          input.URL,
		OriginalName: input.OriginalName,
		Description:  input.Description,
	}
	course, err := h.service.AddContent(c.Request.Context(), courseID, chapterID, moduleID, teacherID, content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) SetQuiz(c *gin.Context) {
	teacherID, ok := pathUUID(c, "teacher_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	chapterID, ok := pathUUID(c, "chapter_id")
	if !ok {
		return
	}
	moduleID, ok := pathUUID(c, "module_id")
	if !ok {
		return
	}
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.service.SetModuleQuiz(c.Request.Context(), courseID, chapterID, moduleID, teacherID, quiz)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) PublishCourse(c *gin.Context) {
	teacherID, ok := pathUUID(c, "teacher_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	if err := h.service.Publish(c.Request.Context(), courseID, teacherID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *CourseHandler) HideCourse(c *gin.Context) {
	teacherID, ok := pathUUID(c, "teacher_id")
	if !ok {
		return
	}
	courseID, ok := pathUUID(c, "course_id")
	if !ok {
		return
	}
	if err := h.service.Hide(c.Request.Context(), courseID, teacherID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
