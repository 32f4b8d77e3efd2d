// Optional Telegram reporting of run outcomes.

package reporter

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-glassdoor-scraper/internal/config"
	"go-glassdoor-scraper/internal/scraper"
)

// TelegramReporter pushes run summaries to a chat. A nil reporter is valid
// and every method on it is a no-op, so callers never branch on config.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramReporter returns nil (not an error) when no token is
// configured; reporting is strictly optional.
func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	if t == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendSummary(query scraper.SearchQuery, count int, elapsed time.Duration) error {
	text := fmt.Sprintf(
		"✅ <b>%s</b> in <b>%s</b>\n"+
			"📦 %d jobs scraped\n"+
			"⏱ %.2fs",
		query.Keyword,
		query.Place,
		count,
		elapsed.Seconds(),
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Scraper Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
