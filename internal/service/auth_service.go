package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
	"github.com/artistdesk/artistdesk-api/internal/util"
)

// resetTokenTTL bounds how long an emailed reset link stays usable.
const resetTokenTTL = 60 * time.Minute

// ResetMailer delivers the plaintext reset token. Failures are logged by
// the caller and never surfaced to the requester.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, email, token, resetURL string) error
}

type AuthService struct {
	users    ports.UserRepository
	resets   ports.PasswordResetRepository
	tokens   *util.JWTManager
	mailer   ResetMailer
	tokenTTL time.Duration
}

func NewAuthService(users ports.UserRepository, resets ports.PasswordResetRepository, tokens *util.JWTManager, mailer ResetMailer, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		resets:   resets,
		tokens:   tokens,
		mailer:   mailer,
		tokenTTL: tokenTTL,
	}
}

// Login verifies the credentials and issues a bearer token with
// sub=username. Unknown username and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return "", time.Time{}, ErrInvalidLogin
		}
		return "", time.Time{}, err
	}
	if !util.VerifyPassword(password, user.Password) {
		return "", time.Time{}, ErrInvalidLogin
	}
	return s.tokens.Generate(user.Username, s.tokenTTL)
}

type RegisterInput struct {
	Username     string
	Password     string
	TypeOfEntity string
	Name         string
	Surname      string
	EmailAddress string
	PhoneNumber  string
	VatID        *string
	BankAccount  *string
}

// Register hashes the password and persists the account. Duplicates are
// detected via the store's unique constraint, never pre-checked.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (int64, error) {
	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return 0, err
	}
	id, err := s.users.Create(ctx, ports.UserCreate{
		Username:     input.Username,
		PasswordHash: hash,
		TypeOfEntity: input.TypeOfEntity,
		Name:         input.Name,
		Surname:      input.Surname,
		EmailAddress: input.EmailAddress,
		PhoneNumber:  input.PhoneNumber,
		VatID:        input.VatID,
		BankAccount:  input.BankAccount,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateUser
		}
		return 0, err
	}
	return id, nil
}

// ChangePassword verifies the old password against the hash already
// loaded for the resolved identity, then persists the new one.
func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, oldPassword, newPassword string) error {
	if !util.VerifyPassword(oldPassword, user.Password) {
		return ErrWrongPassword
	}
	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	updated, err := s.users.UpdatePassword(ctx, user.ID, hash)
	if err != nil {
		return err
	}
	if !updated {
		// The account vanished between session resolution and the
		// update. A consistency fault, not a normal error.
		return fmt.Errorf("password update: user %d not found", user.ID)
	}
	return nil
}

// ForgotPassword generates and emails a reset token. An unknown email is
// a silent no-op so responses cannot be used to probe for accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email, resetURL string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			log.Printf("forgot password requested for unknown email")
			return nil
		}
		return err
	}

	token, err := util.GenerateResetToken()
	if err != nil {
		return err
	}
	tokenHash, err := util.HashPassword(token)
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(resetTokenTTL)
	if _, err := s.resets.Create(ctx, user.ID, tokenHash, expiresAt); err != nil {
		return err
	}

	// Fire-and-forget: a mailer failure must not change the response the
	// requester sees.
	if err := s.mailer.SendPasswordReset(ctx, user.EmailAddress, token, resetURL); err != nil {
		log.Printf("send password reset email: %v", err)
	}
	return nil
}

// ResetPassword consumes a reset token. The plaintext is verified against
// every unexpired fingerprint; the set is small because rows are deleted
// on use and on detected expiry.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	now := time.Now()
	candidates, err := s.resets.ListUnexpired(ctx, now)
	if err != nil {
		return err
	}

	var match *domain.PasswordResetToken
	for i := range candidates {
		if util.VerifyPassword(token, candidates[i].TokenHash) {
			match = &candidates[i]
			break
		}
	}
	if match == nil {
		return ErrResetTokenInvalid
	}

	// Defense in depth: re-check expiry on the matched row.
	if match.Expired(time.Now()) {
		if err := s.resets.Delete(ctx, match.ID); err != nil {
			return err
		}
		return ErrResetTokenExpired
	}

	user, err := s.users.FindByID(ctx, match.UserID)
	if err != nil {
		if isNotFound(err) {
			if delErr := s.resets.Delete(ctx, match.ID); delErr != nil {
				return delErr
			}
			return ErrResetTokenOrphaned
		}
		return err
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	updated, err := s.users.UpdatePassword(ctx, user.ID, hash)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("password reset: user %d not found", user.ID)
	}
	return s.resets.Delete(ctx, match.ID)
}

// Authenticate resolves a bearer token to the account it asserts. Every
// failure mode collapses into ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, ErrUnauthorized
	}
	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
