package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/birthsafe/enrollbridge/internal/config"
)

// AdminNotifier sends alerts to the fixed administrative chat through
// the silent notifier bot.
type AdminNotifier struct {
	bot    *bot.Bot
	chatID int64
}

func NewAdminNotifier(b *bot.Bot, chatID int64) *AdminNotifier {
	return &AdminNotifier{bot: b, chatID: chatID}
}

func (n *AdminNotifier) NotifyAdmin(ctx context.Context, text string) error {
	text = Truncate(text, config.MaxTelegramMessageLen)

	ctx, cancel := context.WithTimeout(ctx, config.NotifyTimeout)
	defer cancel()

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	return err
}
