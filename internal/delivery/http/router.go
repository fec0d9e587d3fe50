package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/delivery/http/controllers"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/service"
	"github.com/Liyanipatel27/learning-management-system-sub001/pkg/logger"
)

func InitRoutes(l logger.Log, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(config))

	statusController := controllers.NewStatusHandler()
	courseController := controllers.NewCourseHandler(l, u.CourseService)
	progressController := controllers.NewProgressHandler(l, u.ProgressService)
	reportController := controllers.NewReportHandler(l, u.ReportService)

	v1 := r.Group("/v1", controllers.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		courses := v1.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.GET("/:course_id", courseController.CourseByID)
			courses.GET("/:course_id/modules/:module_id/quiz", progressController.QuizForAttempt)
		}

		teachers := v1.Group("/teachers/:teacher_id")
		{
			teachers.POST("/courses", courseController.NewCourse)
			teachers.GET("/courses", courseController.MyCourses)
			teachers.POST("/courses/:course_id/chapters", courseController.AddChapter)
			teachers.POST("/courses/:course_id/chapters/:chapter_id/modules", courseController.AddModule)
			teachers.POST("/courses/:course_id/chapters/:chapter_id/modules/:module_id/contents", courseController.AddContent)
			teachers.PUT("/courses/:course_id/chapters/:chapter_id/modules/:module_id/quiz", courseController.SetQuiz)
			teachers.PATCH("/courses/:course_id/publish", courseController.PublishCourse)
			teachers.PATCH("/courses/:course_id/hide", courseController.HideCourse)
		}

		students := v1.Group("/students/:student_id")
		{
			students.GET("/courses", reportController.CourseSummaries)
			students.GET("/grades", reportController.StudentGrades)
			students.GET("/courses/:course_id/progress", progressController.CourseProgress)
			students.POST("/courses/:course_id/contents/:content_id/progress", progressController.RecordContentProgress)
			students.POST("/courses/:course_id/modules/:module_id/quiz/submit", progressController.SubmitQuiz)
			students.GET("/courses/:course_id/completion", progressController.FinalizeCompletion)
			students.POST("/courses/:course_id/completion", progressController.FinalizeCompletion)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/students-progress", reportController.StudentProgressReport)
		}
	}
	return r
}
