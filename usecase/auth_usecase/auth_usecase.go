// Package auth_usecase implements the single-admin login flow: bcrypt
// password verification, signed session tokens, and login rate
// limiting.
package auth_usecase

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"grandriver/config"
	apperrors "grandriver/utils/errors"
	"grandriver/utils/logger"
)

// defaultPassword is the development fallback used when neither
// ADMIN_PASSWORD_HASH nor ADMIN_PASSWORD is set. Its use is logged as a
// warning on boot.
const defaultPassword = "researchadmin"

const sessionSubject = "admin"

type AuthUsecase struct {
	passwordHash []byte
	secret       []byte
	sessionTTL   time.Duration
	limiter      *rate.Limiter
	usedDefault  bool
}

// NewAuthUsecase resolves admin credentials from configuration. The
// password hash comes from ADMIN_PASSWORD_HASH verbatim, else from
// hashing ADMIN_PASSWORD, else from hashing the development default.
func NewAuthUsecase(cfg config.AdminConfig) (*AuthUsecase, error) {
	var (
		hash        []byte
		usedDefault bool
	)
	switch {
	case cfg.PasswordHash != "":
		hash = []byte(cfg.PasswordHash)
		if _, err := bcrypt.Cost(hash); err != nil {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is not a bcrypt hash: %w", err)
		}
	case cfg.Password != "":
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash ADMIN_PASSWORD: %w", err)
		}
	default:
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash default password: %w", err)
		}
		usedDefault = true
		if logger.Logger != nil {
			logger.Logger.Warn("no admin password configured, using development default",
				"hint", "set ADMIN_PASSWORD_HASH or ADMIN_PASSWORD")
		}
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = []byte(hex.EncodeToString(buf))
		if logger.Logger != nil {
			logger.Logger.Warn("SESSION_SECRET not set, sessions will not survive restarts")
		}
	}

	ratePerMin := cfg.LoginRatePerMin
	if ratePerMin <= 0 {
		ratePerMin = 10
	}
	burst := cfg.LoginBurst
	if burst <= 0 {
		burst = 1
	}

	return &AuthUsecase{
		passwordHash: hash,
		secret:       secret,
		sessionTTL:   cfg.SessionTTL,
		limiter:      rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), burst),
		usedDefault:  usedDefault,
	}, nil
}

// UsedDefaultPassword reports whether the development fallback password
// is active, so the login page can surface a warning.
func (u *AuthUsecase) UsedDefaultPassword() bool {
	return u.usedDefault
}

// SessionTTL is the lifetime of issued session tokens.
func (u *AuthUsecase) SessionTTL() time.Duration {
	return u.sessionTTL
}

// Login checks the submitted password and, on success, issues a signed
// session token together with its expiry.
func (u *AuthUsecase) Login(password string) (string, time.Time, error) {
	if !u.limiter.Allow() {
		return "", time.Time{}, apperrors.RateLimitError(
			"Too many login attempts. Please wait and try again.", nil)
	}

	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expires := now.Add(u.sessionTTL)
	claims := jwt.RegisteredClaims{
		Subject:   sessionSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expires, nil
}

// ValidateSession checks a session token and reports whether it
// represents a live admin session.
func (u *AuthUsecase) ValidateSession(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return u.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return apperrors.ErrSessionExpired
		}
		return apperrors.ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != sessionSubject {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}
