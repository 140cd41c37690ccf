package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/course-api/internal/crypto"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
)

const basicScheme = "Basic"

// dummyPassword is hashed once and verified against whenever the claimed
// account does not exist, so that both failure paths cost one hash check.
const dummyPassword = "course-api-dummy-password"

// authService is the concrete implementation of AuthService.
// It registers accounts and authenticates HTTP Basic credentials against
// the stored bcrypt hashes.
type authService struct {
	// accountRepository is the data-access layer used to create and look up accounts.
	accountRepository store.AccountRepository

	// hasher produces and checks password hashes.
	hasher crypto.PasswordHasher

	// validator checks registration requests before anything is hashed.
	validator validators.Validator

	dummyHashOnce sync.Once
	dummyHash     string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use.
func NewAuthService(accountRepository store.AccountRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		hasher:            hasher,
		validator:         validator,
		logger:            logger,
	}
}

// RegisterAccount creates a new account.
//
// Returns the persisted account (with a server-assigned ID) or:
//   - *validators.ValidationError when the request is incomplete or malformed.
//   - store.ErrEmailAlreadyExists when the email address is taken.
//   - a wrapped error when hashing or persistence fails unexpectedly.
func (a *authService) RegisterAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid account data provided")
		return models.Account{}, err
	}

	account := req.ToAccount()

	var password string
	if req.Password != nil {
		password = *req.Password
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("email", account.EmailAddress).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}
	account.PasswordHash = hash

	created, err := a.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("email", account.EmailAddress).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return created, nil
}

// Authenticate decodes HTTP Basic credentials and checks them against the
// stored account.
//
// Failures, all wrapping ErrAccessDenied:
//   - ErrMissingCredentials: no header, or an empty email or password.
//   - ErrMalformedCredentials: not the Basic scheme, bad base64, or no ':'.
//   - ErrAccountNotFound: no account has the claimed email.
//   - ErrInvalidPassword: the password does not match.
//
// Store failures and unreadable stored hashes are returned wrapped and do
// not match ErrAccessDenied.
func (a *authService) Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error) {
	email, password, err := parseBasicCredentials(authorizationHeader)
	if err != nil {
		return models.Identity{}, err
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrAccountNotFound) {
		a.verifyDummy(password)
		return models.Identity{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("account lookup failed: %w", err)
	}

	ok, err := a.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return models.Identity{}, fmt.Errorf("password verification failed for account %d: %w", account.ID, err)
	}
	if !ok {
		return models.Identity{}, ErrInvalidPassword
	}

	return models.Identity{Account: account}, nil
}

func (a *authService) verifyDummy(password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Msg("failed to prepare dummy password hash")
			return
		}
		a.dummyHash = hash
	})

	if a.dummyHash != "" {
		_, _ = a.hasher.Verify(password, a.dummyHash)
	}
}

// parseBasicCredentials splits an "Authorization: Basic base64(email:password)"
// header value into its parts.
func parseBasicCredentials(header string) (string, string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", "", ErrMissingCredentials
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, basicScheme) {
		return "", "", ErrMalformedCredentials
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return "", "", ErrMalformedCredentials
	}

	email, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", ErrMalformedCredentials
	}

	if email == "" || password == "" {
		return "", "", ErrMissingCredentials
	}

	return email, password, nil
}
