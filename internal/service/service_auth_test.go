package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/course-api/internal/crypto"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/mock"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthSvc wires authService to mocks
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockAccountRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockAccountRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(repo, hasher, validators.NewAccountValidator(), logger.Nop()).(*authService)
	return svc, repo, hasher
}

func basicHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func strPtr(s string) *string { return &s }

func validRegistration() models.CreateAccountRequest {
	return models.CreateAccountRequest{
		FirstName:    strPtr("Joe"),
		LastName:     strPtr("Smith"),
		EmailAddress: strPtr("joe@smith.com"),
		Password:     strPtr("joepassword"),
	}
}

// ── RegisterAccount ──────────────────────────────────────────────────────────

func TestAuthService_RegisterAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash("joepassword").Return("$2a$10$hash", nil),
		repo.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Account) (models.Account, error) {
				assert.Equal(t, "Joe", a.FirstName)
				assert.Equal(t, "joe@smith.com", a.EmailAddress)
				assert.Equal(t, "$2a$10$hash", a.PasswordHash, "plaintext must never reach the store")
				a.ID = 1
				return a, nil
			},
		),
	)

	account, err := svc.RegisterAccount(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
}

func TestAuthService_RegisterAccount_ValidationFailsBeforeHashing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	req := validRegistration()
	req.FirstName = strPtr("")

	_, err := svc.RegisterAccount(context.Background(), req)

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.MsgFirstNameEmpty}, vErr.Violations)
}

func TestAuthService_RegisterAccount_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterAccount(context.Background(), validRegistration())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterAccount_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

	_, err := svc.RegisterAccount(context.Background(), validRegistration())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password hashing failed")
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Account{ID: 7, EmailAddress: "joe@smith.com", PasswordHash: "stored-hash"}

	repo.EXPECT().FindAccountByEmail(ctx, "joe@smith.com").Return(stored, nil)
	hasher.EXPECT().Verify("joepassword", "stored-hash").Return(true, nil)

	identity, err := svc.Authenticate(ctx, basicHeader("joe@smith.com", "joepassword"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.AccountID())
}

func TestAuthService_Authenticate_PasswordMayContainColon(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), "joe@smith.com").Return(models.Account{ID: 1, PasswordHash: "h"}, nil)
	hasher.EXPECT().Verify("pa:ss:word", "h").Return(true, nil)

	_, err := svc.Authenticate(context.Background(), basicHeader("joe@smith.com", "pa:ss:word"))
	assert.NoError(t, err)
}

func TestAuthService_Authenticate_HeaderFailures(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   error
	}{
		{name: "empty header", header: "", want: ErrMissingCredentials},
		{name: "blank header", header: "   ", want: ErrMissingCredentials},
		{name: "bearer scheme", header: "Bearer abc.def.ghi", want: ErrMalformedCredentials},
		{name: "scheme only", header: "Basic", want: ErrMalformedCredentials},
		{name: "bad base64", header: "Basic !!!not-base64!!!", want: ErrMalformedCredentials},
		{name: "no colon", header: "Basic " + base64.StdEncoding.EncodeToString([]byte("joe@smith.com")), want: ErrMalformedCredentials},
		{name: "empty email", header: basicHeader("", "secret"), want: ErrMissingCredentials},
		{name: "empty password", header: basicHeader("joe@smith.com", ""), want: ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.Authenticate(context.Background(), tt.header)

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrAccessDenied)
		})
	}
}

func TestAuthService_Authenticate_SchemeIsCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), "joe@smith.com").Return(models.Account{ID: 1, PasswordHash: "h"}, nil)
	hasher.EXPECT().Verify("pw", "h").Return(true, nil)

	header := "basic " + base64.StdEncoding.EncodeToString([]byte("joe@smith.com:pw"))
	_, err := svc.Authenticate(context.Background(), header)
	assert.NoError(t, err)
}

func TestAuthService_Authenticate_AccountNotFound_StillVerifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), "nobody@example.com").Return(models.Account{}, store.ErrAccountNotFound).Times(2)
	hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Times(1)
	hasher.EXPECT().Verify("secret", "dummy-hash").Return(false, nil).Times(2)

	for range 2 {
		_, err := svc.Authenticate(context.Background(), basicHeader("nobody@example.com", "secret"))
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
}

func TestAuthService_Authenticate_InvalidPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), "joe@smith.com").Return(models.Account{ID: 1, PasswordHash: "h"}, nil)
	hasher.EXPECT().Verify("wrong", "h").Return(false, nil)

	_, err := svc.Authenticate(context.Background(), basicHeader("joe@smith.com", "wrong"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAuthService_Authenticate_StoreErrorIsNotAccessDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	dbErr := errors.New("connection reset")
	repo.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, dbErr)

	_, err := svc.Authenticate(context.Background(), basicHeader("joe@smith.com", "pw"))
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}

func TestAuthService_Authenticate_MalformedStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{ID: 1, PasswordHash: "garbage"}, nil)
	hasher.EXPECT().Verify("pw", "garbage").Return(false, crypto.ErrInvalidHashFormat)

	_, err := svc.Authenticate(context.Background(), basicHeader("joe@smith.com", "pw"))
	assert.ErrorIs(t, err, crypto.ErrInvalidHashFormat)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}

// With the real bcrypt hasher, the right password authenticates and any
// other password or unknown email is denied.
func TestAuthService_Authenticate_WithBcrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)

	hasher, err := crypto.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(repo, hasher, validators.NewAccountValidator(), logger.Nop())

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), "a@x.com").Return(models.Account{ID: 3, EmailAddress: "a@x.com", PasswordHash: hash}, nil).AnyTimes()
	repo.EXPECT().FindAccountByEmail(gomock.Any(), "b@x.com").Return(models.Account{}, store.ErrAccountNotFound).AnyTimes()

	identity, err := svc.Authenticate(context.Background(), basicHeader("a@x.com", "secret"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), identity.AccountID())

	for _, pw := range []string{"Secret", "secret ", "s", "secretsecret"} {
		_, err = svc.Authenticate(context.Background(), basicHeader("a@x.com", pw))
		assert.ErrorIs(t, err, ErrAccessDenied, pw)
	}

	_, err = svc.Authenticate(context.Background(), basicHeader("b@x.com", "secret"))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestFailureReason(t *testing.T) {
	assert.Equal(t, ReasonMissingCredentials, FailureReason(ErrMissingCredentials))
	assert.Equal(t, ReasonMalformedCredentials, FailureReason(ErrMalformedCredentials))
	assert.Equal(t, ReasonAccountNotFound, FailureReason(ErrAccountNotFound))
	assert.Equal(t, ReasonInvalidPassword, FailureReason(ErrInvalidPassword))
	assert.Equal(t, ReasonUnknown, FailureReason(errors.New("boom")))
}
