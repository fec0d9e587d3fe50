package service

import (
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/service/course"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/service/progress"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/service/report"
)

type Collection struct {
	CourseService   *course.CourseService
	ProgressService *progress.Service
	ReportService   *report.ReportService
}
