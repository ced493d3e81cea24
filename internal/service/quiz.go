package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Mazen-wedaa/telegram-quizy/internal/models"
	"go.uber.org/zap"
)

var (
	ErrNoQuestions     = errors.New("no questions available for this lecture")
	ErrNoSession       = errors.New("no active quiz session")
	ErrInvalidOption   = errors.New("selected option is out of range")
	ErrAlreadyAnswered = errors.New("current question already answered")
)

type CatalogSI interface {
	Resolve(ctx context.Context, subject string, lecture int) models.QuestionSet
}

type LedgerSI interface {
	RecordCompletion(ctx context.Context, userID int64, name string, sessionScore int) (int, error)
}

type SessionStoreI interface {
	SetSession(userID int64, session models.QuizSession)
	Session(userID int64) (models.QuizSession, bool)
	DeleteSession(userID int64)
}

// QuizS drives a user's quiz from the first question to the final score.
// Transitions run under one mutex, so the update loop and timeout timers
// never interleave inside a single step; whichever event arrives first wins
// and the loser sees a session that has already moved on.
type QuizS struct {
	mu       sync.Mutex
	catalog  CatalogSI
	ledger   LedgerSI
	sessions SessionStoreI
	now      func() time.Time
	log      *zap.Logger
}

func NewQuizService(catalog CatalogSI, ledger LedgerSI, sessions SessionStoreI, log *zap.Logger) *QuizS {
	return &QuizS{
		catalog:  catalog,
		ledger:   ledger,
		sessions: sessions,
		now:      time.Now,
		log:      log,
	}
}

// Start resolves the lecture's questions and opens a fresh session. An empty
// set means the lecture is unavailable and no session is created.
func (q *QuizS) Start(ctx context.Context, userID int64, name, subject string, lecture int) (models.QuizStep, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	set := q.catalog.Resolve(ctx, subject, lecture)
	if len(set.Questions) == 0 {
		q.log.Warn("no questions for lecture",
			zap.String("subject", subject), zap.Int("lecture", lecture))
		return models.QuizStep{}, ErrNoQuestions
	}

	session := models.QuizSession{
		UserID:    userID,
		Subject:   subject,
		Lecture:   lecture,
		Questions: set.Questions,
		Current:   0,
		Score:     0,
		Phase:     models.PhaseAnswering,
		StartedAt: q.now(),
	}

	q.log.Info("quiz started", zap.Int64("user_id", userID),
		zap.String("subject", subject), zap.Int("lecture", lecture), zap.Int("questions", len(set.Questions)))

	return q.step(ctx, session, name)
}

// Submit scores the answer to the current question. Out-of-range selections
// leave the session untouched so the user can pick again; a question whose
// stored correct index is broken is skipped without scoring.
func (q *QuizS) Submit(ctx context.Context, userID int64, selected int) (models.AnswerFeedback, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	session, exists := q.sessions.Session(userID)
	if !exists || session.Current >= len(session.Questions) {
		return models.AnswerFeedback{}, ErrNoSession
	}
	if session.Phase != models.PhaseAnswering {
		return models.AnswerFeedback{}, ErrAlreadyAnswered
	}

	question := session.Questions[session.Current]
	feedback := models.AnswerFeedback{
		Number: session.Current + 1,
		Total:  len(session.Questions),
		Text:   question.Text,
	}

	if !question.Valid() {
		q.log.Warn("skipping invalid question", zap.Int64("user_id", userID),
			zap.String("subject", session.Subject), zap.Int("lecture", session.Lecture),
			zap.Int("question", session.Current))
		feedback.Skipped = true
		session.Current++
		session.Phase = models.PhaseFeedback
		q.sessions.SetSession(userID, session)
		return feedback, nil
	}

	if selected < 0 || selected >= len(question.Options) {
		return models.AnswerFeedback{}, ErrInvalidOption
	}

	feedback.Correct = selected == question.Correct
	feedback.ChosenIndex = selected
	feedback.ChosenText = question.Options[selected]
	feedback.CorrectIndex = question.Correct
	feedback.CorrectText = question.Options[question.Correct]
	feedback.Explanation = question.Explanation

	if feedback.Correct {
		session.Score++
	}
	session.Current++
	session.Phase = models.PhaseFeedback
	q.sessions.SetSession(userID, session)

	return feedback, nil
}

// Advance moves from feedback to the next question, or completes the quiz
// when all questions are answered. A duplicate advance re-issues the current
// prompt without touching the session.
func (q *QuizS) Advance(ctx context.Context, userID int64, name string) (models.QuizStep, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	session, exists := q.sessions.Session(userID)
	if !exists {
		return models.QuizStep{}, ErrNoSession
	}

	if session.Phase == models.PhaseAnswering {
		if session.Current >= len(session.Questions) {
			return models.QuizStep{}, ErrNoSession
		}
		prompt := promptFor(session)
		return models.QuizStep{Prompt: &prompt}, nil
	}

	session.Phase = models.PhaseAnswering
	return q.step(ctx, session, name)
}

// Skip is the synthetic no-answer event issued when a question's timer
// expires. It only applies while the session is still waiting on exactly that
// question; anything else is a late event and is dropped.
func (q *QuizS) Skip(ctx context.Context, userID int64, questionIdx int) (models.AnswerFeedback, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	session, exists := q.sessions.Session(userID)
	if !exists || session.Phase != models.PhaseAnswering || session.Current != questionIdx {
		return models.AnswerFeedback{}, ErrNoSession
	}

	question := session.Questions[session.Current]
	feedback := models.AnswerFeedback{
		Number:   session.Current + 1,
		Total:    len(session.Questions),
		Text:     question.Text,
		TimedOut: true,
	}
	if question.Valid() {
		feedback.CorrectIndex = question.Correct
		feedback.CorrectText = question.Options[question.Correct]
		feedback.Explanation = question.Explanation
	} else {
		feedback.Skipped = true
	}

	session.Current++
	session.Phase = models.PhaseFeedback
	q.sessions.SetSession(userID, session)

	q.log.Info("question timed out", zap.Int64("user_id", userID), zap.Int("question", questionIdx))

	return feedback, nil
}

// Abandon drops the user's session, if any, without recording a score.
func (q *QuizS) Abandon(userID int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, exists := q.sessions.Session(userID); exists {
		q.log.Info("quiz abandoned", zap.Int64("user_id", userID))
		q.sessions.DeleteSession(userID)
	}
}

// step skips past questions that cannot even be rendered, then either emits
// the current prompt or completes the quiz. The session is destroyed before
// the ledger call, so completion records exactly once.
func (q *QuizS) step(ctx context.Context, session models.QuizSession, name string) (models.QuizStep, error) {
	skipped := 0
	for session.Current < len(session.Questions) && len(session.Questions[session.Current].Options) == 0 {
		q.log.Warn("skipping question without options", zap.Int64("user_id", session.UserID),
			zap.String("subject", session.Subject), zap.Int("lecture", session.Lecture),
			zap.Int("question", session.Current))
		session.Current++
		skipped++
	}

	if session.Current >= len(session.Questions) {
		q.sessions.DeleteSession(session.UserID)

		result := models.QuizResult{
			Subject: session.Subject,
			Lecture: session.Lecture,
			Score:   session.Score,
			Total:   len(session.Questions),
		}

		rank, err := q.ledger.RecordCompletion(ctx, session.UserID, name, session.Score)
		if err != nil {
			q.log.Warn("failed to record quiz completion",
				zap.Int64("user_id", session.UserID), zap.Error(err))
		} else {
			result.Rank = rank
			result.Recorded = true
		}

		q.log.Info("quiz completed", zap.Int64("user_id", session.UserID),
			zap.Int("score", session.Score), zap.Int("total", result.Total), zap.Int("rank", result.Rank))

		return models.QuizStep{Result: &result, Skipped: skipped}, nil
	}

	q.sessions.SetSession(session.UserID, session)
	prompt := promptFor(session)
	return models.QuizStep{Prompt: &prompt, Skipped: skipped}, nil
}

func promptFor(session models.QuizSession) models.QuestionPrompt {
	question := session.Questions[session.Current]
	return models.QuestionPrompt{
		Subject: session.Subject,
		Lecture: session.Lecture,
		Number:  session.Current + 1,
		Total:   len(session.Questions),
		Text:    question.Text,
		Options: question.Options,
		Index:   session.Current,
	}
}
