package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:      15 * time.Minute,
			RefreshTokenTTL:     7 * 24 * time.Hour,
			RefreshRotateWindow: 48 * time.Hour,
		},
		Invitation: &config.InvitationConfig{
			RegistrationURL: "http://localhost:5173/registration",
		},
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// memStore is an in-memory user directory and invitation table with snapshot rollback.
type memStore struct {
	users       map[string]*entity.User       // by username
	invitations map[string]*entity.Invitation // by channel id
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[string]*entity.User),
		invitations: make(map[string]*entity.Invitation),
	}
}

func (s *memStore) snapshot() *memStore {
	clone := newMemStore()
	for k, v := range s.users {
		u := *v
		clone.users[k] = &u
	}
	for k, v := range s.invitations {
		inv := *v
		clone.invitations[k] = &inv
	}

	return clone
}

// memDB guards a memStore. Transactions run one at a time, like serializable isolation.
type memDB struct {
	mu    sync.Mutex
	store *memStore
}

func newMemDB() *memDB {
	return &memDB{store: newMemStore()}
}

func (db *memDB) UserCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()

	return len(db.store.users)
}

func (db *memDB) InvitationCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()

	return len(db.store.invitations)
}

func (db *memDB) SetDisabled(username string, disabled bool) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.store.users[username].Disabled = disabled
}

// lockedUserRepo and lockedInvitationRepo are the non-transactional repositories.
type lockedUserRepo struct{ db *memDB }

func (r *lockedUserRepo) run(fn func(repo *memUserRepo) error) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return fn(&memUserRepo{store: r.db.store})
}

func (r *lockedUserRepo) FindByUsername(ctx context.Context, username string) (user *entity.User, err error) {
	err = r.run(func(repo *memUserRepo) error {
		user, err = repo.FindByUsername(ctx, username)

		return err
	})

	return user, err
}

func (r *lockedUserRepo) FindByEmail(ctx context.Context, email string) (user *entity.User, err error) {
	err = r.run(func(repo *memUserRepo) error {
		user, err = repo.FindByEmail(ctx, email)

		return err
	})

	return user, err
}

func (r *lockedUserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.run(func(repo *memUserRepo) error { return repo.Create(ctx, user) })
}

func (r *lockedUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.run(func(repo *memUserRepo) error { return repo.Update(ctx, user) })
}

type lockedInvitationRepo struct{ db *memDB }

func (r *lockedInvitationRepo) run(fn func(repo *memInvitationRepo) error) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return fn(&memInvitationRepo{store: r.db.store})
}

func (r *lockedInvitationRepo) FindByChannelID(ctx context.Context, channelID string) (inv *entity.Invitation, err error) {
	err = r.run(func(repo *memInvitationRepo) error {
		inv, err = repo.FindByChannelID(ctx, channelID)

		return err
	})

	return inv, err
}

func (r *lockedInvitationRepo) FindByToken(ctx context.Context, token string) (inv *entity.Invitation, err error) {
	err = r.run(func(repo *memInvitationRepo) error {
		inv, err = repo.FindByToken(ctx, token)

		return err
	})

	return inv, err
}

func (r *lockedInvitationRepo) Create(ctx context.Context, invitation *entity.Invitation) error {
	return r.run(func(repo *memInvitationRepo) error { return repo.Create(ctx, invitation) })
}

func (r *lockedInvitationRepo) DeleteByToken(ctx context.Context, token string) error {
	return r.run(func(repo *memInvitationRepo) error { return repo.DeleteByToken(ctx, token) })
}

// memUserRepo works on a store whose lock is already held.
type memUserRepo struct{ store *memStore }

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := r.store.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.Username]; ok {
		return domainerrors.ErrUserAlreadyExists
	}
	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domainerrors.ErrEmailAlreadyExists
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.store.users[user.Username] = &clone

	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	var current *entity.User
	for _, existing := range r.store.users {
		if existing.ID == user.ID {
			current = existing
		} else if strings.EqualFold(existing.Email, user.Email) {
			return domainerrors.ErrEmailAlreadyExists
		}
	}
	if current == nil {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = time.Now()
	clone := *user
	delete(r.store.users, current.Username)
	r.store.users[clone.Username] = &clone

	return nil
}

type memInvitationRepo struct{ store *memStore }

func (r *memInvitationRepo) FindByChannelID(_ context.Context, channelID string) (*entity.Invitation, error) {
	inv, ok := r.store.invitations[channelID]
	if !ok {
		return nil, repository.ErrInvitationNotFound
	}
	clone := *inv

	return &clone, nil
}

func (r *memInvitationRepo) FindByToken(_ context.Context, token string) (*entity.Invitation, error) {
	for _, inv := range r.store.invitations {
		if inv.Token == token {
			clone := *inv

			return &clone, nil
		}
	}

	return nil, repository.ErrInvitationNotFound
}

func (r *memInvitationRepo) Create(_ context.Context, invitation *entity.Invitation) error {
	if _, ok := r.store.invitations[invitation.ChannelID]; ok {
		return repository.ErrInvitationExists
	}
	for _, inv := range r.store.invitations {
		if inv.Token == invitation.Token {
			return repository.ErrInvitationExists
		}
	}

	invitation.CreatedAt = time.Now()
	clone := *invitation
	r.store.invitations[invitation.ChannelID] = &clone

	return nil
}

func (r *memInvitationRepo) DeleteByToken(_ context.Context, token string) error {
	for channelID, inv := range r.store.invitations {
		if inv.Token == token {
			delete(r.store.invitations, channelID)

			return nil
		}
	}

	return repository.ErrInvitationNotFound
}

type memRepoFactory struct{ store *memStore }

func (f *memRepoFactory) UserRepo() repository.UserRepository {
	return &memUserRepo{store: f.store}
}

func (f *memRepoFactory) InvitationRepo() repository.InvitationRepository {
	return &memInvitationRepo{store: f.store}
}

// memTxManager holds the database lock for the whole transaction and restores the snapshot on error.
type memTxManager struct{ db *memDB }

func (tm *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.db.mu.Lock()
	defer tm.db.mu.Unlock()

	saved := tm.db.store.snapshot()
	if err := fn(&memRepoFactory{store: tm.db.store}); err != nil {
		tm.db.store = saved

		return err
	}

	return nil
}

// fakeHasher avoids bcrypt cost in scenario tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenCodec hands out opaque tokens and remembers their claims. Expiry follows the fake clock.
type fakeTokenCodec struct {
	mu         sync.Mutex
	clock      *fakeClock
	accessTTL  time.Duration
	refreshTTL time.Duration
	issued     map[string]entity.TokenClaims
}

func newFakeTokenCodec(clock *fakeClock, cfg *config.Config) *fakeTokenCodec {
	return &fakeTokenCodec{
		clock:      clock,
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
		issued:     make(map[string]entity.TokenClaims),
	}
}

func (c *fakeTokenCodec) Encode(claims *entity.TokenClaims) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := string(claims.Kind) + "." + claims.Subject + "." + claims.ID
	c.issued[token] = *claims

	return token, nil
}

func (c *fakeTokenCodec) Decode(token string, kind entity.TokenKind) (*entity.TokenClaims, error) {
	c.mu.Lock()
	claims, ok := c.issued[token]
	c.mu.Unlock()

	if !ok {
		return nil, service.ErrTokenMalformed
	}
	if claims.Kind != kind {
		return nil, service.ErrTokenKindMismatch
	}
	if claims.Expired(c.clock.Now()) {
		return nil, service.ErrTokenExpired
	}

	return &claims, nil
}

func (c *fakeTokenCodec) Issue(subject string, kind entity.TokenKind) (string, *entity.TokenClaims, error) {
	ttl := c.accessTTL
	if kind == entity.TokenKindRefresh {
		ttl = c.refreshTTL
	}

	now := c.clock.Now()
	claims := &entity.TokenClaims{
		Kind:      kind,
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	token, err := c.Encode(claims)
	if err != nil {
		return "", nil, err
	}

	return token, claims, nil
}

type memRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newMemRevocationStore() *memRevocationStore {
	return &memRevocationStore{revoked: make(map[string]time.Time)}
}

func (s *memRevocationStore) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[token] = expiresAt

	return nil
}

func (s *memRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.revoked[token]

	return ok, nil
}

func (s *memRevocationStore) PurgeExpired(context.Context) (int64, error) {
	return 0, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.AuthEvent
	err    error
}

func (p *recordingPublisher) PublishAuthEvent(_ context.Context, event *service.AuthEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, *event)

	return p.err
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}

	return types
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []service.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, notification *service.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sent = append(n.sent, *notification)

	return n.err
}

// gateFixture wires both services over the same in-memory state.
type gateFixture struct {
	db          *memDB
	clock       *fakeClock
	codec       *fakeTokenCodec
	revocation  *memRevocationStore
	publisher   *recordingPublisher
	notifier    *recordingNotifier
	sessions    *sessionService
	invitations *invitationService
}

func newGateFixture() *gateFixture {
	cfg := newTestConfig()
	db := newMemDB()
	clock := newFakeClock()
	codec := newFakeTokenCodec(clock, cfg)
	revocation := newMemRevocationStore()
	publisher := &recordingPublisher{}
	notifier := &recordingNotifier{}
	logger := newDiscardLogger()

	sessions := newSessionService(SessionServiceParams{
		TxManager:  &memTxManager{db: db},
		UserRepo:   &lockedUserRepo{db: db},
		Hasher:     fakeHasher{},
		Tokens:     codec,
		Revocation: revocation,
		Publisher:  publisher,
		Config:     cfg,
		Logger:     logger,
	}, clock.Now)

	invitations := newInvitationService(InvitationServiceParams{
		TxManager:      &memTxManager{db: db},
		InvitationRepo: &lockedInvitationRepo{db: db},
		Hasher:         fakeHasher{},
		Notifier:       notifier,
		Publisher:      publisher,
		Config:         cfg,
		Logger:         logger,
	}, uuid.NewString)

	return &gateFixture{
		db:          db,
		clock:       clock,
		codec:       codec,
		revocation:  revocation,
		publisher:   publisher,
		notifier:    notifier,
		sessions:    sessions,
		invitations: invitations,
	}
}
