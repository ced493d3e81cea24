package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Mazen-wedaa/telegram-quizy/internal/config"
	"github.com/Mazen-wedaa/telegram-quizy/internal/models"
	"github.com/Mazen-wedaa/telegram-quizy/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	textSessionExpired  = "حدث خطأ في الجلسة. يرجى بدء اختبار جديد."
	textInvalidOption   = "خيار غير صالح. يرجى المحاولة مرة أخرى."
	textSkippedQuestion = "⚠️ حدث خطأ في السؤال الحالي. جار الانتقال للسؤال التالي."
	textTimedOut        = "⏰ انتهى الوقت لهذا السؤال!"
)

var perfectScoreResponses = []string{
	"ما شاء الله عليك! 🚀 انت دلوقتي في المركز %d على لوحة المتصدرين!",
	"برافو عليك! 💯 شغل عالي المستوى! انت دلوقتي في المركز %d!",
	"عبقرية مصرية خالصة! 🧠 مركزك دلوقتي %d على اللوحة!",
}

var lowScoreResponses = []string{
	"معلش يا صاحبي، المرة الجاية هتكسرها! 💪 استمر في المذاكرة!",
	"ولا يهمك! الدنيا مش آخرها! 😄 شد حيلك شوية وهتبقى تمام!",
	"طب ما تحاول تاني؟ 🙈 المذاكرة هي الحل!",
}

type QuizT struct {
	bot                BotSender
	service            QuizSI
	subjects           []string
	lecturesPerSubject int
	timeout            time.Duration

	mu     sync.Mutex
	timers map[int64]*time.Timer
}

func NewQuizTAPI(bot BotSender, cfg config.QuizConfig, service QuizSI) *QuizT {
	return &QuizT{
		bot:                bot,
		service:            service,
		subjects:           cfg.Subjects,
		lecturesPerSubject: cfg.LecturesPerSubject,
		timeout:            cfg.QuestionTimeout,
		timers:             make(map[int64]*time.Timer),
	}
}

func (t *QuizT) showSubjects(query *tgbotapi.CallbackQuery) {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for i, subject := range t.subjects {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(subject, fmt.Sprintf("subject_%d", i)),
		})
	}
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(ButtonBackToMenu, CallbackMainMenu),
	})

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		"اختر الموضوع الذي ترغب في اختباره:",
		tgbotapi.NewInlineKeyboardMarkup(buttons...),
	)

	editMessage(t.bot, edit)
}

func (t *QuizT) showLectures(query *tgbotapi.CallbackQuery) {
	subjectIdx, err := strconv.Atoi(strings.TrimPrefix(query.Data, "subject_"))
	if err != nil || subjectIdx < 0 || subjectIdx >= len(t.subjects) {
		log.Printf("Invalid subject callback data: %s", query.Data)
		t.editText(query, textGenericError)
		return
	}
	subject := t.subjects[subjectIdx]

	var buttons [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, 3)
	for n := 1; n <= t.lecturesPerSubject; n++ {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("Lecture %d", n),
			fmt.Sprintf("lecture_%d_%d", subjectIdx, n),
		))
		if len(row) == 3 {
			buttons = append(buttons, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 3)
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(ButtonBackToSubject, CallbackChooseSubject),
	})

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		fmt.Sprintf("اختر المحاضرة من %s:", subject),
		tgbotapi.NewInlineKeyboardMarkup(buttons...),
	)

	editMessage(t.bot, edit)
}

func (t *QuizT) startQuiz(query *tgbotapi.CallbackQuery) {
	parts := strings.Split(query.Data, "_")
	if len(parts) != 3 {
		log.Printf("Invalid lecture callback data: %s", query.Data)
		t.editText(query, textGenericError)
		return
	}
	subjectIdx, err1 := strconv.Atoi(parts[1])
	lecture, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || subjectIdx < 0 || subjectIdx >= len(t.subjects) {
		log.Printf("Invalid lecture callback data: %s", query.Data)
		t.editText(query, textGenericError)
		return
	}
	subject := t.subjects[subjectIdx]

	userID := query.From.ID
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	step, err := t.service.Start(ctx, userID, query.From.FirstName, subject, lecture)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			t.editText(query, fmt.Sprintf(
				"عذراً، لا توجد أسئلة متاحة لهذه المحاضرة (%s - المحاضرة %d). يرجى اختيار محاضرة أخرى.",
				subject, lecture))
			return
		}
		log.Printf("failed to start quiz for user %d: %v", userID, err)
		t.editText(query, textGenericError)
		return
	}

	t.renderStep(query, userID, step)
}

func (t *QuizT) handleAnswer(query *tgbotapi.CallbackQuery) {
	selected, err := strconv.Atoi(strings.TrimPrefix(query.Data, "answer_"))
	if err != nil {
		log.Printf("Invalid answer callback data: %s", query.Data)
		t.editText(query, textGenericError)
		return
	}

	userID := query.From.ID
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feedback, err := t.service.Submit(ctx, userID, selected)
	switch {
	case errors.Is(err, service.ErrAlreadyAnswered):
		// Duplicate tap on an already answered question, nothing to re-render.
		return
	case errors.Is(err, service.ErrNoSession):
		t.endWithMenu(query, textSessionExpired)
		return
	case errors.Is(err, service.ErrInvalidOption):
		t.repromptInvalidOption(query)
		return
	case err != nil:
		log.Printf("failed to submit answer for user %d: %v", userID, err)
		t.editText(query, textGenericError)
		return
	}

	t.disarmTimer(userID)
	t.showFeedback(query.Message.Chat.ID, query.Message.MessageID, feedback)
}

func (t *QuizT) handleNext(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	step, err := t.service.Advance(ctx, userID, query.From.FirstName)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			t.endWithMenu(query, textSessionExpired)
			return
		}
		log.Printf("failed to advance quiz for user %d: %v", userID, err)
		t.editText(query, textGenericError)
		return
	}

	t.renderStep(query, userID, step)
}

func (t *QuizT) abandon(userID int64) {
	t.disarmTimer(userID)
	t.service.Abandon(userID)
}

func (t *QuizT) renderStep(query *tgbotapi.CallbackQuery, userID int64, step models.QuizStep) {
	if step.Result != nil {
		t.disarmTimer(userID)
		t.showResult(query, userID, *step.Result)
		return
	}

	prompt := *step.Prompt
	text := fmt.Sprintf("سؤال %d/%d\n\n%s", prompt.Number, prompt.Total, prompt.Text)
	if step.Skipped > 0 {
		text = textSkippedQuestion + "\n\n" + text
	}

	var buttons [][]tgbotapi.InlineKeyboardButton
	for i, option := range prompt.Options {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%c. %s", 'A'+i, option),
				fmt.Sprintf("answer_%d", i),
			),
		})
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		text,
		tgbotapi.NewInlineKeyboardMarkup(buttons...),
	)

	editMessage(t.bot, edit)

	t.armTimer(userID, query.Message.Chat.ID, query.Message.MessageID, prompt.Index)
}

func (t *QuizT) showFeedback(chatID int64, messageID int, feedback models.AnswerFeedback) {
	var text string
	switch {
	case feedback.Skipped:
		text = textSkippedQuestion
	case feedback.TimedOut:
		text = fmt.Sprintf("%s\n\nسؤال %d:\n\n%s\n\n✅ الإجابة الصحيحة: %c. %s\n\n💡 %s",
			textTimedOut, feedback.Number, feedback.Text,
			'A'+feedback.CorrectIndex, feedback.CorrectText, feedback.Explanation)
	case feedback.Correct:
		text = fmt.Sprintf("سؤال %d:\n\n%s\n\n✅ إجابتك صحيحة: %c. %s\n\n💡 %s",
			feedback.Number, feedback.Text,
			'A'+feedback.ChosenIndex, feedback.ChosenText, feedback.Explanation)
	default:
		text = fmt.Sprintf("سؤال %d:\n\n%s\n\n❌ إجابتك: %c. %s\n✅ الإجابة الصحيحة: %c. %s\n\n💡 %s",
			feedback.Number, feedback.Text,
			'A'+feedback.ChosenIndex, feedback.ChosenText,
			'A'+feedback.CorrectIndex, feedback.CorrectText, feedback.Explanation)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonNext, CallbackNextQuestion),
		),
	)

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	editMessage(t.bot, edit)
}

func (t *QuizT) showResult(query *tgbotapi.CallbackQuery, userID int64, result models.QuizResult) {
	text := fmt.Sprintf("انتهى الاختبار: %s - المحاضرة %d\n\nالنتيجة: %d/%d\n\n%s",
		result.Subject, result.Lecture, result.Score, result.Total,
		resultMessage(userID, result))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonBackToMenu, CallbackMainMenu),
		),
	)

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		text,
		keyboard,
	)

	editMessage(t.bot, edit)
}

func resultMessage(userID int64, result models.QuizResult) string {
	switch {
	case result.Total == 0:
		return "انتهى الاختبار بدون أسئلة."
	case result.Score == result.Total && result.Recorded:
		return fmt.Sprintf(perfectScoreResponses[userID%int64(len(perfectScoreResponses))], result.Rank)
	case result.Score < 3:
		return lowScoreResponses[userID%int64(len(lowScoreResponses))]
	default:
		percentage := result.Score * 100 / result.Total
		return fmt.Sprintf("أحسنت! حصلت على %d من %d (%d%%). 🎯", result.Score, result.Total, percentage)
	}
}

// repromptInvalidOption keeps the question on screen with its keyboard so the
// user can simply pick again.
func (t *QuizT) repromptInvalidOption(query *tgbotapi.CallbackQuery) {
	if query.Message.ReplyMarkup == nil {
		t.editText(query, textInvalidOption)
		return
	}

	text := query.Message.Text
	if !strings.HasSuffix(text, textInvalidOption) {
		text = text + "\n\n" + textInvalidOption
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		text,
		*query.Message.ReplyMarkup,
	)

	editMessage(t.bot, edit)
}

func (t *QuizT) endWithMenu(query *tgbotapi.CallbackQuery, text string) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonBackToMenu, CallbackMainMenu),
		),
	)

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		text,
		keyboard,
	)

	editMessage(t.bot, edit)
}

func (t *QuizT) editText(query *tgbotapi.CallbackQuery, text string) {
	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
	editMessage(t.bot, edit)
}

// armTimer schedules the synthetic no-answer event for one question. The
// question index travels with the timer so a late expiry against a question
// the user already answered is dropped by the state machine.
func (t *QuizT) armTimer(userID, chatID int64, messageID, questionIdx int) {
	if t.timeout <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[userID]; ok {
		timer.Stop()
	}
	t.timers[userID] = time.AfterFunc(t.timeout, func() {
		t.handleTimeout(userID, chatID, messageID, questionIdx)
	})
}

func (t *QuizT) disarmTimer(userID int64) {
	if t.timeout <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[userID]; ok {
		timer.Stop()
		delete(t.timers, userID)
	}
}

func (t *QuizT) handleTimeout(userID, chatID int64, messageID, questionIdx int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feedback, err := t.service.Skip(ctx, userID, questionIdx)
	if err != nil {
		// A real answer won the race, nothing to show.
		return
	}

	t.showFeedback(chatID, messageID, feedback)
}
