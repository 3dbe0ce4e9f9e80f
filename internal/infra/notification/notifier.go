package notification

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker"
	"go.uber.org/fx"
)

const (
	defaultImageName = "invitation.png"

	defaultBreakerMaxRequests  = 1
	defaultBreakerInterval     = time.Minute
	defaultBreakerTimeout      = 30 * time.Second
	defaultBreakerMinRequests  = 3
	defaultBreakerFailureRatio = 0.6
)

// sender is the part of *tgbotapi.BotAPI used for delivery.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifier struct {
	bot     sender
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

type NotifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Bot    *tgbotapi.BotAPI `optional:"true"`
}

// NewNotifier returns a Telegram notifier, or a disabled one when there is no bot.
func NewNotifier(params NotifierParams) service.Notifier {
	if params.Bot == nil {
		return &disabledNotifier{logger: params.Logger}
	}

	var breakerCfg config.BreakerConfig
	if params.Config.Telegram != nil {
		breakerCfg = params.Config.Telegram.Breaker
	}

	return newTelegramNotifier(params.Bot, breakerCfg, params.Logger)
}

func newTelegramNotifier(bot sender, cfg config.BreakerConfig, logger *slog.Logger) *telegramNotifier {
	return &telegramNotifier{
		bot:     bot,
		breaker: newBreaker(cfg, logger),
		logger:  logger,
	}
}

func newBreaker(cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	maxRequests := cfg.MaxRequests
	if maxRequests == 0 {
		maxRequests = defaultBreakerMaxRequests
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultBreakerInterval
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}
	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = defaultBreakerMinRequests
	}
	ratio := cfg.FailureRatio
	if ratio <= 0 {
		ratio = defaultBreakerFailureRatio
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "telegram",
		MaxRequests: maxRequests,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= minRequests && failureRatio >= ratio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Notify sends the text, or the image with the text as caption, to the chat named by ChannelID.
func (n *telegramNotifier) Notify(ctx context.Context, notification *service.Notification) error {
	if err := contextDone(ctx); err != nil {
		return domainerrors.ErrDeliveryFailed.WrapMessage(err.Error())
	}

	chatID, err := strconv.ParseInt(notification.ChannelID, 10, 64)
	if err != nil {
		return domainerrors.ErrDeliveryFailed.WrapMessage("channel id is not a telegram chat id")
	}

	var msg tgbotapi.Chattable
	if len(notification.Image) > 0 {
		name := notification.ImageName
		if name == "" {
			name = defaultImageName
		}
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: notification.Image})
		photo.Caption = notification.Text
		msg = photo
	} else {
		msg = tgbotapi.NewMessage(chatID, notification.Text)
	}

	if _, err := n.breaker.Execute(func() (any, error) {
		return n.bot.Send(msg)
	}); err != nil {
		n.logger.WarnContext(ctx, "Telegram delivery failed",
			slog.Int64("chat_id", chatID),
			slog.String("breaker_state", n.breaker.State().String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrDeliveryFailed.WrapMessage(err.Error())
	}

	return nil
}

type disabledNotifier struct {
	logger *slog.Logger
}

func (n *disabledNotifier) Notify(ctx context.Context, notification *service.Notification) error {
	n.logger.DebugContext(ctx, "Telegram disabled, dropping notification",
		slog.String("channel_id", notification.ChannelID),
	)

	return domainerrors.ErrDeliveryFailed.WrapMessage("telegram bot is not configured")
}
