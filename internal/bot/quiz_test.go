package bot

import (
	"testing"

	mock_bot "github.com/Mazen-wedaa/telegram-quizy/internal/bot/mock"
	"github.com/Mazen-wedaa/telegram-quizy/internal/config"
	"github.com/Mazen-wedaa/telegram-quizy/internal/models"
	"github.com/Mazen-wedaa/telegram-quizy/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuizConfig() config.QuizConfig {
	return config.QuizConfig{
		Subjects:            []string{"Internet Technology", "Database Systems"},
		LecturesPerSubject:  14,
		QuestionsPerLecture: 10,
		LeaderboardSize:     10,
	}
}

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) *QuizT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewQuizTAPI(mockBot, testQuizConfig(), mockService)
}

func callbackQuery(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "1",
		From: &tgbotapi.User{ID: 456, FirstName: "Mazen"},
		Message: &tgbotapi.Message{
			MessageID: 10,
			Chat:      &tgbotapi.Chat{ID: 123},
		},
		Data: data,
	}
}

func samplePrompt() *models.QuestionPrompt {
	return &models.QuestionPrompt{
		Subject: "Database Systems",
		Lecture: 1,
		Number:  1,
		Total:   2,
		Text:    "First question?",
		Options: []string{"a", "b", "c", "d"},
		Index:   0,
	}
}

func TestQuizT_showSubjects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT := newQuizTMock(t, ctrl, nil)
	mb, _ := quizT.bot.(*mock_bot.MockBot)

	quizT.showSubjects(callbackQuery(CallbackChooseSubject))

	require.Equal(t, 1, len(mb.SentMessages))
	msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, "اختر الموضوع الذي ترغب في اختباره:", msg.Text)
	require.NotNil(t, msg.ReplyMarkup)
	// One row per subject plus the back-to-menu row.
	assert.Equal(t, 3, len(msg.ReplyMarkup.InlineKeyboard))
	assert.Equal(t, "subject_0", *msg.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
}

func TestQuizT_showLectures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		wantText   string
		wantRows   int
	}{
		{
			name:     "success: 14 lectures in rows of 3 plus back row",
			data:     "subject_1",
			wantText: "اختر المحاضرة من Database Systems:",
			wantRows: 6,
		},
		{
			name:     "invalid index",
			data:     "subject_9",
			wantText: textGenericError,
		},
		{
			name:     "malformed data",
			data:     "subject_abc",
			wantText: textGenericError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, nil)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			quizT.showLectures(callbackQuery(tt.data))

			require.Equal(t, 1, len(mb.SentMessages))
			msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
			require.True(t, ok)
			assert.Equal(t, tt.wantText, msg.Text)
			if tt.wantRows > 0 {
				require.NotNil(t, msg.ReplyMarkup)
				assert.Equal(t, tt.wantRows, len(msg.ReplyMarkup.InlineKeyboard))
				assert.Equal(t, "lecture_1_1", *msg.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
			}
		})
	}
}

func TestQuizT_startQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: first question rendered with options",
			data: "lecture_1_1",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Start(gomock.Any(), int64(456), "Mazen", "Database Systems", 1).
					Return(models.QuizStep{Prompt: samplePrompt()}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Equal(t, "سؤال 1/2\n\nFirst question?", msg.Text)
				require.NotNil(t, msg.ReplyMarkup)
				require.Equal(t, 4, len(msg.ReplyMarkup.InlineKeyboard))
				assert.Equal(t, "A. a", msg.ReplyMarkup.InlineKeyboard[0][0].Text)
				assert.Equal(t, "answer_0", *msg.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
			},
		},
		{
			name: "lecture unavailable",
			data: "lecture_0_99",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Start(gomock.Any(), int64(456), "Mazen", "Internet Technology", 99).
					Return(models.QuizStep{}, service.ErrNoQuestions)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Equal(t,
					"عذراً، لا توجد أسئلة متاحة لهذه المحاضرة (Internet Technology - المحاضرة 99). يرجى اختيار محاضرة أخرى.",
					msg.Text)
			},
		},
		{
			name: "malformed callback data",
			data: "lecture_x_y",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Equal(t, textGenericError, msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.startQuiz(callbackQuery(tt.data))

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestQuizT_handleAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "correct answer feedback",
			data: "answer_0",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Submit(gomock.Any(), int64(456), 0).Return(models.AnswerFeedback{
					Number:       1,
					Total:        2,
					Text:         "First question?",
					Correct:      true,
					ChosenIndex:  0,
					ChosenText:   "a",
					CorrectIndex: 0,
					CorrectText:  "a",
					Explanation:  "first",
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, msg.Text, "✅ إجابتك صحيحة: A. a")
				assert.Contains(t, msg.Text, "💡 first")
				require.NotNil(t, msg.ReplyMarkup)
				assert.Equal(t, CallbackNextQuestion, *msg.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
			},
		},
		{
			name: "wrong answer feedback shows the correct option",
			data: "answer_2",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Submit(gomock.Any(), int64(456), 2).Return(models.AnswerFeedback{
					Number:       1,
					Total:        2,
					Text:         "First question?",
					ChosenIndex:  2,
					ChosenText:   "c",
					CorrectIndex: 0,
					CorrectText:  "a",
					Explanation:  "first",
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, msg.Text, "❌ إجابتك: C. c")
				assert.Contains(t, msg.Text, "✅ الإجابة الصحيحة: A. a")
			},
		},
		{
			name: "session expired",
			data: "answer_0",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Submit(gomock.Any(), int64(456), 0).
					Return(models.AnswerFeedback{}, service.ErrNoSession)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Equal(t, textSessionExpired, msg.Text)
			},
		},
		{
			name: "duplicate answer dropped silently",
			data: "answer_0",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Submit(gomock.Any(), int64(456), 0).
					Return(models.AnswerFeedback{}, service.ErrAlreadyAnswered)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
		{
			name: "malformed answer data",
			data: "answer_x",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Equal(t, textGenericError, msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.handleAnswer(callbackQuery(tt.data))

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestQuizT_handleNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "next question prompt",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				prompt := samplePrompt()
				prompt.Number = 2
				prompt.Index = 1
				prompt.Text = "Second question?"
				ms.EXPECT().Advance(gomock.Any(), int64(456), "Mazen").
					Return(models.QuizStep{Prompt: prompt}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Equal(t, "سؤال 2/2\n\nSecond question?", msg.Text)
			},
		},
		{
			name: "skipped invalid question notice prefixes the prompt",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Advance(gomock.Any(), int64(456), "Mazen").
					Return(models.QuizStep{Prompt: samplePrompt(), Skipped: 1}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, msg.Text, textSkippedQuestion)
				assert.Contains(t, msg.Text, "First question?")
			},
		},
		{
			name: "completion result with rank",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Advance(gomock.Any(), int64(456), "Mazen").
					Return(models.QuizStep{Result: &models.QuizResult{
						Subject:  "Database Systems",
						Lecture:  1,
						Score:    1,
						Total:    2,
						Rank:     3,
						Recorded: true,
					}}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, msg.Text, "انتهى الاختبار: Database Systems - المحاضرة 1")
				assert.Contains(t, msg.Text, "النتيجة: 1/2")
				require.NotNil(t, msg.ReplyMarkup)
				assert.Equal(t, CallbackMainMenu, *msg.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
			},
		},
		{
			name: "session expired",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Advance(gomock.Any(), int64(456), "Mazen").
					Return(models.QuizStep{}, service.ErrNoSession)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Equal(t, textSessionExpired, msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.handleNext(callbackQuery(CallbackNextQuestion))

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestQuizT_handleTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "timeout renders feedback with the correct answer",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Skip(gomock.Any(), int64(456), 0).Return(models.AnswerFeedback{
					Number:       1,
					Total:        2,
					Text:         "First question?",
					TimedOut:     true,
					CorrectIndex: 0,
					CorrectText:  "a",
					Explanation:  "first",
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, msg.Text, textTimedOut)
				assert.Contains(t, msg.Text, "✅ الإجابة الصحيحة: A. a")
			},
		},
		{
			name: "late timer loses the race and stays silent",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Skip(gomock.Any(), int64(456), 0).
					Return(models.AnswerFeedback{}, service.ErrNoSession)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.handleTimeout(456, 123, 10, 0)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestQuizT_abandon(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().Abandon(int64(456))
	})

	quizT.abandon(456)
}

func TestResultMessage(t *testing.T) {
	t.Parallel()

	perfect := models.QuizResult{Score: 10, Total: 10, Rank: 2, Recorded: true}
	assert.Contains(t, resultMessage(456, perfect), "2")

	low := models.QuizResult{Score: 1, Total: 10, Recorded: true}
	assert.Equal(t, lowScoreResponses[456%int64(len(lowScoreResponses))], resultMessage(456, low))

	mid := models.QuizResult{Score: 7, Total: 10, Recorded: true}
	assert.Contains(t, resultMessage(456, mid), "70%")

	empty := models.QuizResult{}
	assert.Equal(t, "انتهى الاختبار بدون أسئلة.", resultMessage(456, empty))
}
