package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Mazen-wedaa/telegram-quizy/internal/models"
)

// QuestionsR stores one JSON document per (subject slug, lecture) pair.
type QuestionsR struct {
	db QueryI
}

func NewQuestionsRepository(db QueryI) *QuestionsR {
	return &QuestionsR{
		db: db,
	}
}

func (q *QuestionsR) QuestionSet(ctx context.Context, subjectSlug string, lecture int) (models.QuestionSet, bool, error) {
	query := `SELECT payload FROM question_sets WHERE subject_slug = $1 AND lecture = $2`

	var payload []byte
	err := q.db.GetContext(ctx, &payload, query, subjectSlug, lecture)
	if errors.Is(err, sql.ErrNoRows) {
		return models.QuestionSet{}, false, nil
	}
	if err != nil {
		return models.QuestionSet{}, false, err
	}

	var set models.QuestionSet
	if err := json.Unmarshal(payload, &set); err != nil {
		return models.QuestionSet{}, false, fmt.Errorf("failed to decode question set %s/%d: %w", subjectSlug, lecture, err)
	}

	return set, true, nil
}

func (q *QuestionsR) SaveQuestionSet(ctx context.Context, subjectSlug string, lecture int, set models.QuestionSet) error {
	payload, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode question set %s/%d: %w", subjectSlug, lecture, err)
	}

	query := `
        INSERT INTO question_sets (subject_slug, lecture, payload)
        VALUES ($1, $2, $3)
        ON CONFLICT (subject_slug, lecture) DO UPDATE SET payload = EXCLUDED.payload
    `

	_, err = q.db.ExecContext(ctx, query, subjectSlug, lecture, payload)
	if err != nil {
		return err
	}

	return nil
}
