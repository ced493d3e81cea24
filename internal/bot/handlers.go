package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonChooseSubject = "Choose Subject 📚"
	ButtonLeaderboard   = "Leaderboard 🏆"
	ButtonBackToMenu    = "العودة إلى القائمة الرئيسية"
	ButtonBackToSubject = "Back to Subjects"
	ButtonNext          = "التالي"

	CallbackChooseSubject = "choose_subject"
	CallbackLeaderboard   = "leaderboard"
	CallbackMainMenu      = "main_menu"
	CallbackNextQuestion  = "next_question"

	textMainMenu     = "مرحباً بك في بوت الاختبارات الأكاديمية! 👋\n\nاختر موضوعاً للبدء في الاختبار أو اعرض لوحة المتصدرين."
	textGenericError = "حدث خطأ. يرجى المحاولة مرة أخرى."
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "أمر غير معروف. استخدم /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	name := ""
	if message.From != nil {
		name = message.From.FirstName
	}

	welcomeText := "مرحباً " + name + "! 👋\n\n" +
		"أنا بوت الاختبارات الأكاديمية. اختر موضوعاً للبدء في الاختبار أو اعرض لوحة المتصدرين."

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = mainMenuKeyboard()

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := "📚 الأوامر المتاحة:\n" +
		"/start — بدء البوت وعرض القائمة الرئيسية\n" +
		"/help — هذه الرسالة\n\n" +
		"🎯 اختر موضوعاً ثم محاضرة لبدء الاختبار. كل إجابة صحيحة تضيف نقطة إلى رصيدك في لوحة المتصدرين الشهرية."

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "استخدم الأزرار أو اكتب /start للبدء.")
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	if query.Message == nil || query.From == nil {
		log.Printf("CallbackQuery without message or sender: %v", query.ID)
		return
	}

	data := query.Data

	switch {
	case data == CallbackChooseSubject:
		t.quiz.showSubjects(query)

	case data == CallbackLeaderboard:
		t.board.showLeaderboard(query)

	case strings.HasPrefix(data, "subject_"):
		t.quiz.showLectures(query)

	case strings.HasPrefix(data, "lecture_"):
		t.quiz.startQuiz(query)

	case strings.HasPrefix(data, "answer_"):
		t.quiz.handleAnswer(query)

	case data == CallbackNextQuestion:
		t.quiz.handleNext(query)

	case data == CallbackMainMenu:
		t.quiz.abandon(query.From.ID)
		t.showMainMenu(query)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}

func (t *TelegramAPI) showMainMenu(query *tgbotapi.CallbackQuery) {
	keyboard := mainMenuKeyboard()

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		textMainMenu,
		keyboard,
	)

	editMessage(t.bot, edit)
}

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonChooseSubject, CallbackChooseSubject),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonLeaderboard, CallbackLeaderboard),
		),
	)
}
