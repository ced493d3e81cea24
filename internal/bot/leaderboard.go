package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type LeaderboardT struct {
	bot     BotSender
	size    int
	service LeaderboardSI
}

func NewLeaderboardTAPI(bot BotSender, size int, service LeaderboardSI) *LeaderboardT {
	return &LeaderboardT{
		bot:     bot,
		size:    size,
		service: service,
	}
}

func (t *LeaderboardT) showLeaderboard(query *tgbotapi.CallbackQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	period, entries, err := t.service.TopN(ctx, t.size)
	if err != nil {
		log.Printf("failed to load leaderboard: %v", err)
		edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID,
			"❌ حدث خطأ أثناء تحميل لوحة المتصدرين. يرجى المحاولة مرة أخرى.")
		editMessage(t.bot, edit)
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 المتصدرون الشهريون 🏆\n(")
	sb.WriteString(period)
	sb.WriteString(")\n\n")

	if len(entries) == 0 {
		sb.WriteString("لا يوجد متسابقون بعد. كن أول من يظهر هنا!")
	} else {
		for i, entry := range entries {
			medal := ""
			switch i {
			case 0:
				medal = "👑 "
			case 1:
				medal = "🥈 "
			case 2:
				medal = "🥉 "
			}
			sb.WriteString(fmt.Sprintf("%d. %s%s: %d نقطة\n", i+1, medal, entry.Name, entry.Score))
		}
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonBackToMenu, CallbackMainMenu),
		),
	)

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		sb.String(),
		keyboard,
	)

	editMessage(t.bot, edit)
}
