package mail

import (
	"fmt"
	"html"

	"github.com/birthsafe/enrollbridge/internal/config"
)

const (
	VerifiedSubject = "Welcome to BirthSafe! 🤝"
	RejectedSubject = "Your BirthSafe payment verification"
)

// VerifiedStandardBody is the onboarding email for plans below the
// extended tier.
func VerifiedStandardBody(cohortLink string) string {
	link := html.EscapeString(cohortLink)
	return fmt.Sprintf(`
<p>Welcome, Mama, to Birthsafe School of Pregnancy! 🤝</p>
<p>You have successfully enrolled in the Birth Without Wahala Program.</p>
<p><b>Step 1: Join your Cohort Telegram Group here: <a href="%s">%s</a></b></p>
<p>Once you join, Bria will welcome you!</p>
<p>Click the link below to fill out the forms: <a href="%s">%s</a></p>
`, link, link, config.OnboardingFormsLink, config.OnboardingFormsLink)
}

// VerifiedExtendedBody additionally carries the bonus resources link.
func VerifiedExtendedBody(cohortLink string) string {
	link := html.EscapeString(cohortLink)
	return fmt.Sprintf(`
<p>Welcome, Mama, to Birthsafe School of Pregnancy! 🤝</p>
<p>You have successfully enrolled in the Birth Without Wahala Program.</p>
<p><b>Step 1: Join your Cohort Telegram Group here: <a href="%s">%s</a></b></p>
<p>Access your bonus resources here: <a href="%s">%s</a></p>
<p>Click the link below to fill out the forms: <a href="%s">%s</a></p>
`, link, link, config.BonusResourcesLink, config.BonusResourcesLink,
		config.OnboardingFormsLink, config.OnboardingFormsLink)
}

func RejectedBody(reason string) string {
	return fmt.Sprintf(
		`<p>Hello Mama, your payment verification failed. Reason: %s</p>
<p>Please reach out to %s for help.</p>`,
		html.EscapeString(reason), config.SupportContact)
}
