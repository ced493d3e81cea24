package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mazen-wedaa/telegram-quizy/internal/models"
	"go.uber.org/zap"
)

type CatalogRI interface {
	QuestionSet(ctx context.Context, subjectSlug string, lecture int) (models.QuestionSet, bool, error)
	SaveQuestionSet(ctx context.Context, subjectSlug string, lecture int, set models.QuestionSet) error
}

// CatalogS resolves (subject, lecture) to a question set, generating and
// persisting placeholder questions the first time a lecture is requested.
type CatalogS struct {
	repo                CatalogRI
	questionsPerLecture int
	log                 *zap.Logger
}

func NewCatalogService(repo CatalogRI, questionsPerLecture int, log *zap.Logger) *CatalogS {
	return &CatalogS{
		repo:                repo,
		questionsPerLecture: questionsPerLecture,
		log:                 log,
	}
}

// Resolve never fails: if the store is unreachable it returns an empty set
// and callers treat that as "lecture unavailable".
func (c *CatalogS) Resolve(ctx context.Context, subject string, lecture int) models.QuestionSet {
	slug := SubjectSlug(subject)

	set, found, err := c.repo.QuestionSet(ctx, slug, lecture)
	if err != nil {
		c.log.Warn("failed to load question set",
			zap.String("subject", slug), zap.Int("lecture", lecture), zap.Error(err))
		return models.QuestionSet{Lecture: lecture}
	}
	if found {
		return set
	}

	set = c.placeholderSet(subject, lecture)
	if err := c.repo.SaveQuestionSet(ctx, slug, lecture, set); err != nil {
		c.log.Warn("failed to save placeholder question set",
			zap.String("subject", slug), zap.Int("lecture", lecture), zap.Error(err))
		return models.QuestionSet{Lecture: lecture}
	}

	c.log.Info("created placeholder question set",
		zap.String("subject", slug), zap.Int("lecture", lecture), zap.Int("questions", len(set.Questions)))

	return set
}

func (c *CatalogS) placeholderSet(subject string, lecture int) models.QuestionSet {
	set := models.QuestionSet{
		Lecture:   lecture,
		Questions: make([]models.Question, 0, c.questionsPerLecture),
	}

	for i := 1; i <= c.questionsPerLecture; i++ {
		set.Questions = append(set.Questions, models.Question{
			Text: fmt.Sprintf("Sample question %d for %s Lecture %d?", i, subject, lecture),
			Options: []string{
				fmt.Sprintf("Option A for question %d", i),
				fmt.Sprintf("Option B for question %d", i),
				fmt.Sprintf("Option C for question %d", i),
				fmt.Sprintf("Option D for question %d", i),
			},
			Correct:     0,
			Explanation: fmt.Sprintf("This is a sample explanation for question %d.", i),
		})
	}

	return set
}

// SubjectSlug normalizes a subject name into its storage key.
func SubjectSlug(subject string) string {
	return strings.ReplaceAll(strings.ToLower(subject), " ", "_")
}
