package app_errors

import "errors"

var ErrCourseNotFound = errors.New("course not found")
var ErrChapterNotFound = errors.New("chapter not found")
var ErrModuleNotFound = errors.New("module not found")
var ErrProgressNotFound = errors.New("progress record not found")
var ErrCourseNotPublished = errors.New("course not published")
var ErrNotCourseTeacher = errors.New("you are not the course teacher")
var ErrContentNotFound = errors.New("content not found in course")
var ErrNoQuiz = errors.New("module has no quiz")
var ErrEmptyQuiz = errors.New("quiz has no questions")
var ErrDuplicateCourse = errors.New("course already exists for this subject and teacher")
