package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/pkg/tokens"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// SignInQueryHandler verifies credentials against the stored bcrypt hash and
// issues a signed token. Unknown emails and wrong passwords produce the same
// error so the response does not reveal which accounts exist.
type SignInQueryHandler struct {
	db     *gorm.DB
	issuer *tokens.Issuer
}

// NewSignInQueryHandler creates a handler for authentication queries.
func NewSignInQueryHandler(db *gorm.DB, issuer *tokens.Issuer) SignInQueryHandler {
	return SignInQueryHandler{db: db, issuer: issuer}
}

// Handle executes the authentication query.
// Returns ErrInvalidCredentials for unknown emails, deleted accounts, and
// password mismatches alike.
func (h SignInQueryHandler) Handle(ctx context.Context, query SignInQuery) (SignInQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SignInQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			password_hash,
			role
		FROM users
		WHERE email = ? AND deleted = false
	`, query.Email()).Row()

	var (
		id           int64
		passwordHash string
		role         string
	)

	err := row.Scan(&id, &passwordHash, &role)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return SignInQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return SignInQueryResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return SignInQueryResponse{}, ErrInvalidCredentials
	}

	token, err := h.issuer.Issue(id, role)
	if err != nil {
		return SignInQueryResponse{}, err
	}

	return SignInQueryResponse{
		UserID: id,
		Role:   role,
		Token:  token,
	}, nil
}
