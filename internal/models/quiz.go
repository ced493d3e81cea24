package models

import "time"

type Question struct {
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Valid reports whether the question can be scored at all.
func (q Question) Valid() bool {
	return len(q.Options) > 0 && q.Correct >= 0 && q.Correct < len(q.Options)
}

type QuestionSet struct {
	Lecture   int        `json:"lecture"`
	Questions []Question `json:"questions"`
}

const (
	PhaseAnswering = "answering"
	PhaseFeedback  = "feedback"
)

// QuizSession is the live state of one user's quiz attempt. It holds its own
// copy of the questions, so catalog changes never touch a running session.
type QuizSession struct {
	UserID    int64
	Subject   string
	Lecture   int
	Questions []Question
	Current   int
	Score     int
	Phase     string
	StartedAt time.Time
}

// QuestionPrompt is everything the bot layer needs to render one question.
type QuestionPrompt struct {
	Subject string
	Lecture int
	Number  int
	Total   int
	Text    string
	Options []string
	Index   int
}

// AnswerFeedback describes the outcome of a single submitted (or skipped) answer.
type AnswerFeedback struct {
	Number       int
	Total        int
	Text         string
	Correct      bool
	Skipped      bool
	TimedOut     bool
	ChosenIndex  int
	ChosenText   string
	CorrectIndex int
	CorrectText  string
	Explanation  string
}

// QuizResult is the summary shown when a session completes. Recorded is false
// when the leaderboard could not be persisted; Rank is meaningless then.
type QuizResult struct {
	Subject  string
	Lecture  int
	Score    int
	Total    int
	Rank     int
	Recorded bool
}

// QuizStep is the union outcome of starting or advancing a quiz: either the
// next question prompt or the final result. Skipped counts invalid questions
// that were passed over on the way to this step.
type QuizStep struct {
	Prompt  *QuestionPrompt
	Result  *QuizResult
	Skipped int
}
