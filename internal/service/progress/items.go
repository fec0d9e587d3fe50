package progress

import (
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

// EnumerateGradableItems flattens a course document into its gradable items
// in declaration order: chapter, then module, then the module's contents,
// then the module's quiz (counted once, keyed by the module id) when it has
// at least one question. A nil or chapterless course yields no items; a
// malformed document is never an error here.
func EnumerateGradableItems(course *models.Course) []models.GradableItem {
	if course == nil {
		return nil
	}
	var items []models.GradableItem
	for _, ch := range course.Chapters {
		for _, m := range ch.Modules {
			for _, c := range m.Contents {
				items = append(items, models.GradableItem{
					ItemID:       c.ID,
					Kind:         models.ItemKindContent,
					ChapterTitle: ch.Title,
					ModuleTitle:  m.Title,
					ModuleID:     m.ID,
				})
			}
			if m.Quiz != nil && len(m.Quiz.Questions) > 0 {
				items = append(items, models.GradableItem{
					ItemID:       m.ID,
					Kind:         models.ItemKindQuiz,
					ChapterTitle: ch.Title,
					ModuleTitle:  m.Title,
					ModuleID:     m.ID,
				})
			}
		}
	}
	return items
}
