package telegram

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/errors"
	mockUsecase "gatekeeper/internal/mocks/usecase"
	"gatekeeper/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	mu       sync.Mutex
	updates  chan tgbotapi.Update
	sent     []tgbotapi.MessageConfig
	sendErr  error
	stopOnce sync.Once
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update)}
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {
	b.stopOnce.Do(func() { close(b.updates) })
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}

	return tgbotapi.Message{}, b.sendErr
}

func (b *fakeBot) replies() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	texts := make([]string, 0, len(b.sent))
	for _, msg := range b.sent {
		texts = append(texts, msg.Text)
	}

	return texts
}

func commandUpdate(chatID int64, text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: text,
	}
	if len(text) > 0 && text[0] == '/' {
		length := len(text)
		for i, r := range text {
			if r == ' ' {
				length = i

				break
			}
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}}
	}

	return tgbotapi.Update{Message: msg}
}

func newTestBotServer(t *testing.T) (*botServer, *fakeBot, *mockUsecase.MockInvitationUsecase) {
	t.Helper()

	bot := newFakeBot()
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newBotServer(bot, invitations, logger, 1), bot, invitations
}

func inviteOutput(created, delivered bool) *usecase.InviteOutput {
	return &usecase.InviteOutput{
		Invitation: &entity.Invitation{ChannelID: "42", Token: "invite-1"},
		Link:       "https://example.com/registration?key=invite-1",
		Created:    created,
		Delivered:  delivered,
	}
}

func TestBotServer_Start(t *testing.T) {
	tests := []struct {
		name        string
		output      *usecase.InviteOutput
		err         error
		wantReplies []string
	}{
		{
			name:        "new invitation is delivered by the usecase",
			output:      inviteOutput(true, true),
			wantReplies: []string{},
		},
		{
			name:        "existing invitation is sent again",
			output:      inviteOutput(false, true),
			wantReplies: []string{replyAlreadySent},
		},
		{
			name:        "delivery failure",
			output:      inviteOutput(true, false),
			wantReplies: []string{replyDeliveryFailed},
		},
		{
			name:        "issue failure",
			err:         errors.New("database is down"),
			wantReplies: []string{replyDeliveryFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, bot, invitations := newTestBotServer(t)
			invitations.EXPECT().
				Invite(mock.MatchedBy(func(ctx context.Context) bool {
					return deliverycontext.GetRequestIDFromContext(ctx) != ""
				}), "42").
				Return(tt.output, tt.err)

			srv.handleUpdate(context.Background(), commandUpdate(42, "/start"))

			assert.Equal(t, tt.wantReplies, bot.replies())
		})
	}
}

func TestBotServer_OtherMessages(t *testing.T) {
	srv, bot, _ := newTestBotServer(t)

	srv.handleUpdate(context.Background(), commandUpdate(42, "hello"))
	srv.handleUpdate(context.Background(), commandUpdate(42, "/help"))
	srv.handleUpdate(context.Background(), tgbotapi.Update{})

	assert.Equal(t, []string{replyUsage, replyUsage}, bot.replies())
}

func TestBotServer_ReplyFailureIsLogged(t *testing.T) {
	srv, bot, _ := newTestBotServer(t)
	bot.sendErr = errors.New("Forbidden: bot was blocked by the user")

	assert.NotPanics(t, func() {
		srv.handleUpdate(context.Background(), commandUpdate(42, "hello"))
	})
}

func TestBotServer_ServeUntilStopped(t *testing.T) {
	srv, bot, invitations := newTestBotServer(t)
	invitations.EXPECT().Invite(mock.Anything, "7").Return(inviteOutput(false, true), nil)

	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()

	bot.updates <- commandUpdate(7, "/start")
	require.Eventually(t, func() bool { return len(bot.replies()) == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, srv.stop(context.Background()))
	require.NoError(t, srv.stop(context.Background()))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("bot did not stop")
	}
}

func TestDisabledBot(t *testing.T) {
	bot := disabledBot{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	assert.NoError(t, bot.Serve(context.Background()))
}
