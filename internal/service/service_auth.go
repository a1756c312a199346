package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/utils"
	"github.com/MKhiriev/fave-tweets/models"
)

// authService issues and verifies the signed session carried by the session
// cookie. The OAuth handshake with the identity provider happens elsewhere;
// this service only binds its result, the external account id, to a token.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the session
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.SessionSignKey,
		tokenIssuer:   cfg.SessionIssuer,
		tokenDuration: cfg.SessionDuration,
		logger:        logger,
	}
}

// CreateSession issues a signed session for the external account uid.
func (a *authService) CreateSession(ctx context.Context, uid int64) (models.Session, error) {
	session, err := utils.GenerateSessionToken(a.tokenIssuer, uid, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("uid", uid).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// ParseSession validates a raw session token.
//
// Any validation failure (expired, wrong issuer, malformed, bad subject) is
// normalised to ErrSessionInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	session, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected session token")
		return models.Session{}, ErrSessionInvalid
	}

	return session, nil
}
