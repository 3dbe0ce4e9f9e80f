// Package telegram serves the invitation bot: a /start command issues the chat's invitation and
// sends its registration link back to the chat.
package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"gatekeeper/config"
	"gatekeeper/internal/delivery"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	commandStart = "start"

	replyAlreadySent    = "You already have a pending invitation, the registration link was sent again."
	replyDeliveryFailed = "Could not send the registration link, please try again later."
	replyUsage          = "Send /start to receive a registration link."
)

// botClient is the part of *tgbotapi.BotAPI the delivery uses.
type botClient interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// BotParams holds dependencies for the bot delivery, injected by Fx.
type BotParams struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	Logger       *slog.Logger
	Bot          *tgbotapi.BotAPI `optional:"true"`
	InvitationUC usecase.InvitationUsecase
}

type botServer struct {
	bot          botClient
	invitationUC usecase.InvitationUsecase
	logger       *slog.Logger
	pollTimeout  int

	done     chan struct{}
	stopOnce sync.Once
}

// NewBot long-polls the Bot API for commands. Without a bot token it returns a delivery that does nothing.
func NewBot(params BotParams) (delivery.Delivery, error) {
	if params.Bot == nil {
		return disabledBot{logger: params.Logger}, nil
	}

	srv := newBotServer(params.Bot, params.InvitationUC, params.Logger, params.Config.Telegram.PollTimeout)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newBotServer(bot botClient, invitationUC usecase.InvitationUsecase, logger *slog.Logger, pollTimeout int) *botServer {
	return &botServer{
		bot:          bot,
		invitationUC: invitationUC,
		logger:       logger,
		pollTimeout:  pollTimeout,
		done:         make(chan struct{}),
	}
}

func (s *botServer) Serve(ctx context.Context) error {
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = s.pollTimeout
	updateCfg.AllowedUpdates = []string{"message"}

	s.logger.Info("Starting Telegram bot", slog.Int("poll_timeout", s.pollTimeout))
	updates := s.bot.GetUpdatesChan(updateCfg)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			s.handleUpdate(ctx, update)
		}
	}
}

func (s *botServer) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	if !msg.IsCommand() || msg.Command() != commandStart {
		s.reply(ctx, msg.Chat.ID, replyUsage)

		return
	}

	s.handleStart(ctx, msg.Chat.ID)
}

func (s *botServer) handleStart(ctx context.Context, chatID int64) {
	ctx, logger := deliverycontext.WithRequest(ctx, s.logger, uuid.New().String())
	logger = logger.With(slog.Int64("chat_id", chatID))
	ctx = deliverycontext.WithLogger(ctx, logger)

	output, err := s.invitationUC.Invite(ctx, strconv.FormatInt(chatID, 10))
	if err != nil {
		logger.Error("Failed to issue invitation", slog.Any("error", err))
		s.reply(ctx, chatID, replyDeliveryFailed)

		return
	}

	switch {
	case !output.Delivered:
		s.reply(ctx, chatID, replyDeliveryFailed)
	case !output.Created:
		s.reply(ctx, chatID, replyAlreadySent)
	default:
		logger.Info("Invitation sent")
	}
}

func (s *botServer) reply(ctx context.Context, chatID int64, text string) {
	if _, err := s.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to reply",
			slog.Int64("chat_id", chatID),
			slog.Any("error", err),
		)
	}
}

func (s *botServer) stop(_ context.Context) error {
	s.stopOnce.Do(func() {
		s.logger.Info("Shutting down Telegram bot")
		s.bot.StopReceivingUpdates()
		close(s.done)
	})

	return nil
}

type disabledBot struct {
	logger *slog.Logger
}

func (b disabledBot) Serve(context.Context) error {
	b.logger.Info("Telegram bot disabled, no bot token configured")

	return nil
}
