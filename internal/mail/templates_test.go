package mail

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/birthsafe/enrollbridge/internal/config"
)

func TestVerifiedStandardBody(t *testing.T) {
	body := VerifiedStandardBody("https://t.me/+cohort42")

	require.Contains(t, body, "https://t.me/+cohort42")
	require.Contains(t, body, config.OnboardingFormsLink)
	require.NotContains(t, body, config.BonusResourcesLink)
}

func TestVerifiedExtendedBody(t *testing.T) {
	body := VerifiedExtendedBody("https://t.me/+cohort42")

	require.Contains(t, body, "https://t.me/+cohort42")
	require.Contains(t, body, config.OnboardingFormsLink)
	require.Contains(t, body, config.BonusResourcesLink)
}

func TestRejectedBody(t *testing.T) {
	body := RejectedBody("blurry receipt")

	require.Contains(t, body, "blurry receipt")
	require.Contains(t, body, config.SupportContact)
}

func TestRejectedBodyEmptyReason(t *testing.T) {
	body := RejectedBody("")

	require.Contains(t, body, "Reason: ")
	require.Contains(t, body, config.SupportContact)
}

func TestRejectedBodyEscapesHTML(t *testing.T) {
	body := RejectedBody(`<script>alert("x")</script>`)

	require.NotContains(t, body, "<script>")
}
