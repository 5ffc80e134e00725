package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Telegram: the notifier bot only ever sends to the admin chat,
	// the assistant bot polls for updates and talks to members.
	AdminBotToken     string `env:"ADMIN_BOT_TOKEN,required"`
	AdminChatID       int64  `env:"ADMIN_CHAT_ID,required"`
	AssistantBotToken string `env:"ASSISTANT_BOT_TOKEN"`

	// Review dashboard for admins, linked from payment alerts
	FrontendURL string `env:"FRONTEND_URL,required"`

	// Mail: Apps Script style webhook; empty disables outbound mail
	MailWebhookURL string `env:"MAIL_WEBHOOK_URL"`

	// Completion engine; empty makes the assistant fall back to the
	// apology text instead of calling the model
	OpenRouterKey  string `env:"OPENROUTER_API_KEY"`
	AssistantModel string `env:"ASSISTANT_MODEL" envDefault:"openai/gpt-4o-mini"`

	// Server
	Port int `env:"PORT" envDefault:"3000"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) AssistantEnabled() bool {
	return c.AssistantBotToken != ""
}
