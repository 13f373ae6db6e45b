package notify

import (
	"context"
	"fmt"
	"strings"

	"simulador-backend/internal/domain/lead"
	"simulador-backend/pkg/money"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts every new lead to the sales chat.
type Telegram struct {
	bot    sender
	chatID int64
}

// NewTelegram authenticates the bot. An empty endpoint means the public
// Bot API (tgbotapi.APIEndpoint).
func NewTelegram(token string, chatID int64, endpoint string) (*Telegram, error) {
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) NotifyLead(_ context.Context, l *lead.Lead) error {
	msg := tgbotapi.NewMessage(t.chatID, leadMessage(l))
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func leadMessage(l *lead.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Novo lead: %s\n", l.Name)
	fmt.Fprintf(&b, "E-mail: %s\n", l.Email)
	fmt.Fprintf(&b, "Telefone: %s\n", l.Phone)
	fmt.Fprintf(&b, "Imóvel: %s\n", l.PropertyName)
	fmt.Fprintf(&b, "Valor: %s | Entrada: %s\n", money.FormatBRL(l.PropertyValue), money.FormatBRL(l.DownPayment))
	fmt.Fprintf(&b, "Renda: %s\n", money.FormatBRL(l.MonthlyIncome))
	fmt.Fprintf(&b, "%s em %d meses, 1ª parcela %s", l.AmortizationSystem, l.TermMonths, money.FormatBRL(l.InstallmentValue))
	return b.String()
}

// Nop drops every notification. Used when no bot token is configured.
type Nop struct{}

func (Nop) NotifyLead(context.Context, *lead.Lead) error { return nil }
