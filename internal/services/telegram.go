package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier relays preformatted messages to a Telegram chat via the
// bot sendMessage endpoint. Delivery is best effort: callers are expected to
// log a returned error and move on.
type TelegramNotifier struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

func NewTelegramNotifier(token, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		token:   token,
		chatID:  chatID,
		baseURL: telegramAPIBase,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts text to the configured chat with HTML parse mode. When the bot
// token or chat ID is missing the call is skipped without error.
func (n *TelegramNotifier) Send(ctx context.Context, text string) error {
	if n.token == "" || n.chatID == "" {
		log.Println("Telegram configuration missing, skipping notification")
		return nil
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	form := url.Values{
		"chat_id":    {n.chatID},
		"text":       {text},
		"parse_mode": {"HTML"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error (status %d)", resp.StatusCode)
	}

	return nil
}

// FormatSubmission builds the HTML-tagged notification body for a form
// submission, with now as the reported time.
func FormatSubmission(formType, name, email, phone, message string, now time.Time) string {
	if message == "" {
		message = "No additional message"
	}
	return fmt.Sprintf(
		"<b>New Form Submission - %s</b>\n\n"+
			"<b>Name:</b> %s\n"+
			"<b>Email:</b> %s\n"+
			"<b>Phone:</b> %s\n"+
			"<b>Message:</b> %s\n"+
			"<b>Time:</b> %s",
		titleCase(formType), name, email, phone, message,
		now.Format("2006-01-02 15:04:05"))
}

// titleCase renders form_type identifiers like "price_calculator" as
// "Price Calculator".
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
