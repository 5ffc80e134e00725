package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/birthsafe/enrollbridge/internal/config"
)

// Dispatcher sends a single email. Implementations are best-effort:
// the verification workflow logs failures and keeps going.
type Dispatcher interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// WebhookDispatcher posts the message to an Apps Script style mail
// relay as JSON {to, subject, htmlBody, textBody}.
type WebhookDispatcher struct {
	url        string
	httpClient *http.Client
}

func NewWebhookDispatcher(url string) *WebhookDispatcher {
	return &WebhookDispatcher{
		url:        url,
		httpClient: &http.Client{Timeout: config.MailTimeout},
	}
}

type webhookPayload struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
	TextBody string `json:"textBody,omitempty"`
}

func (d *WebhookDispatcher) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload := webhookPayload{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: plainText(htmlBody),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail relay returned status %d", resp.StatusCode)
	}
	return nil
}

// plainText extracts a text alternative from the HTML body for relays
// that deliver multipart mail. Falls back to the raw body if the HTML
// does not parse.
func plainText(htmlBody string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return htmlBody
	}

	var lines []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(lines, "\n")
}

// DisabledDispatcher is used when no relay URL is configured. It logs
// and reports success so verification still completes.
type DisabledDispatcher struct{}

func (DisabledDispatcher) Send(_ context.Context, to, subject, _ string) error {
	slog.Warn("mail relay not configured, dropping email", "to", to, "subject", subject)
	return nil
}
