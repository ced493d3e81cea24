package bot

import (
	"context"
	"log"
	"strings"

	"github.com/Mazen-wedaa/telegram-quizy/internal/config"
	"github.com/Mazen-wedaa/telegram-quizy/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizSI interface {
	Start(ctx context.Context, userID int64, name, subject string, lecture int) (models.QuizStep, error)
	Submit(ctx context.Context, userID int64, selected int) (models.AnswerFeedback, error)
	Advance(ctx context.Context, userID int64, name string) (models.QuizStep, error)
	Skip(ctx context.Context, userID int64, questionIdx int) (models.AnswerFeedback, error)
	Abandon(userID int64)
}

type LeaderboardSI interface {
	TopN(ctx context.Context, n int) (string, []models.LeaderboardEntry, error)
}

type ServiceI interface {
	QuizSI
	LeaderboardSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot   *tgbotapi.BotAPI
	quiz  *QuizT
	board *LeaderboardT
}

func NewTelegramAPI(botToken, env string, cfg config.QuizConfig, service ServiceI) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	return &TelegramAPI{
		bot:   bot,
		quiz:  NewQuizTAPI(bot, cfg, service),
		board: NewLeaderboardTAPI(bot, cfg.LeaderboardSize, service),
	}, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}

// editMessage re-renders a prompt in place. The gateway may deliver the same
// logical state twice; re-issuing an identical edit is a no-op, not an error.
func editMessage(bot BotSender, msg tgbotapi.Chattable) {
	if _, err := bot.Send(msg); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		log.Printf("Failed to edit message: %v", err)
	}
}
