package notifier

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramNotifier delivers reports through the Telegram Bot API.
type TelegramNotifier struct {
	api     *tgbotapi.BotAPI
	chatID  int64  // set when the configured chat id is numeric
	channel string // set when the configured chat id is an @channel name
	log     *zap.SugaredLogger
}

// NewTelegramNotifier creates a notifier with optional proxy support.
// chatID is either a numeric chat id or an @channel username.
func NewTelegramNotifier(botToken, chatID, proxyURL string, log *zap.SugaredLogger) (*TelegramNotifier, error) {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	client := &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}

	api, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	log.Infow("telegram bot authorized", "account", api.Self.UserName)

	n := &TelegramNotifier{api: api, log: log}
	if strings.HasPrefix(chatID, "@") {
		n.channel = chatID
	} else {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("telegram chat id must be numeric or an @channel name: %q", chatID)
		}
		n.chatID = id
	}
	return n, nil
}

// Send delivers a text message to the configured chat.
func (t *TelegramNotifier) Send(text string) error {
	var msg tgbotapi.MessageConfig
	if t.channel != "" {
		msg = tgbotapi.NewMessageToChannel(t.channel, text)
	} else {
		msg = tgbotapi.NewMessage(t.chatID, text)
	}
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SendPhoto uploads the image at path to the configured chat with a
// caption.
func (t *TelegramNotifier) SendPhoto(path, caption string) error {
	var photo tgbotapi.PhotoConfig
	if t.channel != "" {
		photo = tgbotapi.NewPhotoToChannel(t.channel, tgbotapi.FilePath(path))
	} else {
		photo = tgbotapi.NewPhoto(t.chatID, tgbotapi.FilePath(path))
	}
	photo.Caption = caption

	if _, err := t.api.Send(photo); err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	return nil
}
