package service

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrInvalidLogin covers both unknown username and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidLogin = errors.New("incorrect username or password")
	// ErrUnauthorized is the single failure for missing, malformed,
	// expired, or otherwise unverifiable bearer credentials.
	ErrUnauthorized = errors.New("could not validate credentials")
	ErrInactiveUser = errors.New("inactive user")

	ErrDuplicateUser = errors.New("username or email already exists")
	ErrWrongPassword = errors.New("incorrect old password")

	ErrResetTokenInvalid  = errors.New("invalid or already used password reset token")
	ErrResetTokenExpired  = errors.New("password reset token has expired")
	ErrResetTokenOrphaned = errors.New("user associated with the token not found")

	ErrOwnershipMismatch = errors.New("resource does not belong to the current user")

	ErrUserNotFound          = errors.New("user not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrContractNotFound      = errors.New("contract not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrOffereeNotFound       = errors.New("offeree not found")
	ErrSelfContract          = errors.New("offeror cannot be the same as offeree")
)

// assertOwner is the single ownership check every resource service runs
// after resolving a row: owner extractor output against the caller.
func assertOwner(owner interface{ OwnerID() int64 }, userID int64) error {
	if owner.OwnerID() != userID {
		return ErrOwnershipMismatch
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
