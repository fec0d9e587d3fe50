package progress

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

func TestEnumerateGradableItems_NilAndEmpty(t *testing.T) {
	assert.Empty(t, EnumerateGradableItems(nil))
	assert.Empty(t, EnumerateGradableItems(&models.Course{}))
}

func TestEnumerateGradableItems_Order(t *testing.T) {
	contentA := uuid.New()
	contentB := uuid.New()
	contentC := uuid.New()
	moduleA := uuid.New()
	moduleB := uuid.New()

	course := &models.Course{
		ID: uuid.New(),
		Chapters: []models.Chapter{
			{
				ID:    uuid.New(),
				Title: "Basics",
				Modules: []models.Module{
					{
						ID:    moduleA,
						Title: "Intro",
						Contents: []models.Content{
							{ID: contentA, Title: "Welcome", Type: models.ContentTypeVideo},
							{ID: contentB, Title: "Setup", Type: models.ContentTypeText},
						},
						Quiz: newTestQuiz(2, 70, 85),
					},
				},
			},
			{
				ID:    uuid.New(),
				Title: "Advanced",
				Modules: []models.Module{
					{
						ID:    moduleB,
						Title: "Deep dive",
						Contents: []models.Content{
							{ID: contentC, Title: "Theory", Type: models.ContentTypeText},
						},
					},
				},
			},
		},
	}

	items := EnumerateGradableItems(course)
	require.Len(t, items, 4)

	assert.Equal(t, contentA, items[0].ItemID)
	assert.Equal(t, models.ItemKindContent, items[0].Kind)
	assert.Equal(t, contentB, items[1].ItemID)
	// The quiz comes after its module's contents and is keyed by module id.
	assert.Equal(t, moduleA, items[2].ItemID)
	assert.Equal(t, models.ItemKindQuiz, items[2].Kind)
	assert.Equal(t, "Basics", items[2].ChapterTitle)
	assert.Equal(t, "Intro", items[2].ModuleTitle)
	assert.Equal(t, contentC, items[3].ItemID)
}

func TestEnumerateGradableItems_EmptyQuizSkipped(t *testing.T) {
	moduleID := uuid.New()
	course := &models.Course{
		Chapters: []models.Chapter{
			{
				Modules: []models.Module{
					{ID: moduleID, Quiz: &models.Quiz{}},
				},
			},
		},
	}
	assert.Empty(t, EnumerateGradableItems(course))

	course.Chapters[0].Modules[0].Quiz = newTestQuiz(1, 70, 85)
	items := EnumerateGradableItems(course)
	require.Len(t, items, 1)
	assert.Equal(t, models.ItemKindQuiz, items[0].Kind)
}
