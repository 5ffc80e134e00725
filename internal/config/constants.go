package config

import "time"

const (
	// Plan amounts at or above this (in naira) get the extended
	// onboarding email with the bonus resources link.
	ExtendedTierThreshold = 32000

	// Settings key for the currently active cohort group link
	ActiveCohortLinkKey = "active_cohort_link"

	// Used when the settings row is missing or unreadable
	FallbackCohortLink = "https://t.me/birthsafe_admin"

	// Fixed links embedded in the onboarding emails
	OnboardingFormsLink = "https://forms.gle/gspjv2jxy1kUsvRM8"
	BonusResourcesLink  = "https://birthsafeng.myflodesk.com/bwwps"

	// Links in the assistant's welcome package
	EventCentreLink    = "https://t.me/+FiZMxogFUXAzZGE0"
	ConsultReplaysLink = "https://t.me/+cIx-kOJwyVJiMjZk"

	// Human escalation contact for support and rejections
	SupportContact = "@birthsafe_admin"

	// Timeouts
	CompletionTimeout = 60 * time.Second
	MailTimeout       = 30 * time.Second
	NotifyTimeout     = 10 * time.Second

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Verified-enrollment report cadence
	ReportInterval = 24 * time.Hour
)
