// Package notification delivers out-of-band messages through a Telegram bot.
package notification

import (
	"context"
	"log/slog"

	"gatekeeper/config"
	"gatekeeper/internal/errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

type BotParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewBotAPI connects to the Bot API. It returns a nil bot when no token is configured,
// in which case notifications are disabled and the bot delivery does not start.
func NewBotAPI(params BotParams) (*tgbotapi.BotAPI, error) {
	cfg := params.Config.Telegram
	if cfg == nil || cfg.BotToken == "" {
		params.Logger.Warn("Telegram bot token not configured, notifications disabled")

		return nil, nil
	}

	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.BotToken, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to telegram bot api")
	}
	bot.Debug = params.Config.Env.Debug

	params.Logger.Info("Telegram bot authorized", slog.String("username", bot.Self.UserName))

	return bot, nil
}

// Module provides the bot client and the notifier.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBotAPI),
	fx.Provide(NewNotifier),
)

func contextDone(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "notification cancelled")
	}

	return nil
}
