package responder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/birthsafe/enrollbridge/internal/config"
)

// ReplySender delivers assistant messages into chats.
type ReplySender interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyToID *int) error
	Typing(ctx context.Context, chatID int64) context.CancelFunc
}

// Completer answers a member's question under the assistant persona.
type Completer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Responder classifies inbound chat events and dispatches to a canned
// reply or the completion engine. It keeps no state across messages.
type Responder struct {
	sender      ReplySender
	completer   Completer
	botUsername string
	botID       int64
}

func New(sender ReplySender, completer Completer, botUsername string, botID int64) *Responder {
	return &Responder{
		sender:      sender,
		completer:   completer,
		botUsername: botUsername,
		botID:       botID,
	}
}

// welcomePackage is sent once a member presses START in a DM.
func welcomePackage() string {
	return fmt.Sprintf(`Welcome Mama! 😊🤗
You have been added to your cohort, Birth Without Wahala.

Access to your materials takes about 24hrs-48hrs after you fill the Google form.
While you wait, please:
1. Create a Selar account.
2. Join the Online Event Centre: %s
3. Join the Consult Session Replays: %s

I am here to help! Tag me if you have questions. ❤️`,
		config.EventCentreLink, config.ConsultReplaysLink)
}

func groupWelcome(handle string) string {
	return fmt.Sprintf("Welcome Mama @%s to the BirthSafe family! 🌸\n\n"+
		"I am Bria, part of Dr. Idara's team. Please DM me and click START to receive your full welcome package!",
		handle)
}

func apology() string {
	return fmt.Sprintf("I'm having a little trouble answering right now, Mama 😔 "+
		"Please message %s and a human from Dr. Idara's team will help you!",
		config.SupportContact)
}

// HandleUpdate processes one chat event.
func (r *Responder) HandleUpdate(ctx context.Context, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	chatID := msg.Chat.ID

	// New members joining the cohort group
	if len(msg.NewChatMembers) > 0 {
		for _, member := range msg.NewChatMembers {
			if member.IsBot {
				continue
			}
			handle := member.Username
			if handle == "" {
				handle = member.FirstName
			}
			if err := r.sender.SendMessage(ctx, chatID, groupWelcome(handle), nil); err != nil {
				slog.Error("group welcome failed", "error", err, "chat_id", chatID)
			}
		}
		return
	}

	text := msg.Text
	if text == "" {
		return
	}

	isPrivate := msg.Chat.Type == "private"

	if isPrivate && strings.HasPrefix(text, "/start") {
		if err := r.sender.SendMessage(ctx, chatID, welcomePackage(), nil); err != nil {
			slog.Error("welcome package send failed", "error", err, "chat_id", chatID)
		}
		return
	}

	mention := "@" + r.botUsername
	isMentioned := r.botUsername != "" && strings.Contains(text, mention)
	isReplyToBot := msg.ReplyToMessage != nil &&
		msg.ReplyToMessage.From != nil &&
		msg.ReplyToMessage.From.ID == r.botID

	if !isPrivate && !isMentioned && !isReplyToBot {
		return
	}

	stopTyping := r.sender.Typing(ctx, chatID)
	defer stopTyping()

	query := strings.TrimSpace(strings.Replace(text, mention, "", 1))

	answer, err := r.completer.Answer(ctx, query)
	if err != nil {
		slog.Error("completion failed", "error", err, "chat_id", chatID)
		answer = apology()
	}

	replyTo := msg.ID
	if err := r.sender.SendMessage(ctx, chatID, answer, &replyTo); err != nil {
		slog.Error("assistant reply failed", "error", err, "chat_id", chatID)
	}
}
