// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtClaims is the wire shape of a token. The expiry lives under a per-kind key
// (exp_access or exp_refresh) as an integer epoch, so the library's own "exp"
// check never applies and expiry is enforced here.
type jwtClaims struct {
	Kind       entity.TokenKind `json:"kind"`
	ExpAccess  int64            `json:"exp_access,omitempty"`
	ExpRefresh int64            `json:"exp_refresh,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenCodec interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
	parser        *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}
	refreshSecret := cfg.SecretKey.Refresh
	if refreshSecret == "" {
		refreshSecret = cfg.SecretKey.Access
	}

	accessTTL, refreshTTL := 15*time.Minute, 7*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return newJWTService(cfg.SecretKey.Access, refreshSecret, accessTTL, refreshTTL, time.Now), nil
}

func newJWTService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(now),
		),
	}
}

// Issue mints claims of the given kind for subject and signs them.
func (s *jwtService) Issue(subject string, kind entity.TokenKind) (string, *entity.TokenClaims, error) {
	ttl := s.accessTTL
	if kind == entity.TokenKindRefresh {
		ttl = s.refreshTTL
	}

	// Epoch seconds on the wire; truncate so decoded claims equal the issued ones.
	now := s.now().Truncate(time.Second)
	claims := &entity.TokenClaims{
		Kind:      kind,
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	token, err := s.Encode(claims)
	if err != nil {
		return "", nil, err
	}

	return token, claims, nil
}

// Encode serializes the claims into a compact signed string.
func (s *jwtService) Encode(claims *entity.TokenClaims) (string, error) {
	if claims == nil || !claims.Kind.Valid() {
		return "", errors.Wrap(service.ErrTokenMalformed, "unknown token kind")
	}
	if claims.Subject == "" {
		return "", errors.Wrap(service.ErrTokenMalformed, "token subject is empty")
	}

	wire := jwtClaims{
		Kind: claims.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: claims.Subject,
			ID:      claims.ID,
		},
	}
	if !claims.IssuedAt.IsZero() {
		wire.IssuedAt = jwt.NewNumericDate(claims.IssuedAt)
	}
	switch claims.Kind {
	case entity.TokenKindAccess:
		wire.ExpAccess = claims.ExpiresAt.Unix()
	case entity.TokenKindRefresh:
		wire.ExpRefresh = claims.ExpiresAt.Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wire)
	signed, err := token.SignedString(s.secretFor(claims.Kind))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Decode verifies signature and structure, then checks the kind and the kind's expiry claim.
func (s *jwtService) Decode(tokenString string, kind entity.TokenKind) (*entity.TokenClaims, error) {
	if !kind.Valid() {
		return nil, errors.Wrap(service.ErrTokenMalformed, "unknown expected token kind")
	}

	wire := &jwtClaims{}
	_, err := s.parser.ParseWithClaims(tokenString, wire, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secretFor(kind), nil
	})
	if err != nil {
		return nil, classifyParseError(err)
	}

	if !wire.Kind.Valid() || wire.Subject == "" {
		return nil, errors.WithStack(service.ErrTokenMalformed)
	}
	if wire.Kind != kind {
		return nil, errors.WithStack(service.ErrTokenKindMismatch)
	}

	exp := wire.ExpAccess
	if kind == entity.TokenKindRefresh {
		exp = wire.ExpRefresh
	}
	if exp == 0 {
		return nil, errors.Wrap(service.ErrTokenMalformed, "token has no expiry for its kind")
	}

	claims := &entity.TokenClaims{
		Kind:      wire.Kind,
		Subject:   wire.Subject,
		ID:        wire.ID,
		ExpiresAt: time.Unix(exp, 0),
	}
	if wire.IssuedAt != nil {
		claims.IssuedAt = wire.IssuedAt.Time
	}

	if claims.Expired(s.now()) {
		return nil, errors.WithStack(service.ErrTokenExpired)
	}

	return claims, nil
}

func (s *jwtService) secretFor(kind entity.TokenKind) []byte {
	if kind == entity.TokenKindRefresh {
		return s.refreshSecret
	}

	return s.accessSecret
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenInvalidSignature, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
