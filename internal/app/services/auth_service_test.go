package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/pkg/apperrors"
	"github.com/karan/societyhub/internal/pkg/auth"
)

const testPassword = "resident-pass-1"

var (
	hashOnce     sync.Once
	passwordHash string
)

// testPasswordHash hashes once per test binary; bcrypt at cost 12 is slow
func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		hash, err := auth.HashPassword(testPassword)
		if err != nil {
			t.Fatalf("hashing test password: %v", err)
		}
		passwordHash = hash
	})
	return passwordHash
}

type fakeAdminStore struct {
	admins map[string]*models.Admin
}

func (f *fakeAdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return admin, nil
}

type fakeResidentAccountStore struct {
	residents map[string]*models.Resident
	createErr error
}

func (f *fakeResidentAccountStore) GetByEmail(ctx context.Context, email string) (*models.Resident, error) {
	resident, ok := f.residents[email]
	if !ok {
		return nil, apperrors.ErrResidentNotFound
	}
	return resident, nil
}

func (f *fakeResidentAccountStore) Create(ctx context.Context, resident *models.Resident) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.residents[resident.Email]; exists {
		return apperrors.ErrEmailAlreadyExists
	}
	resident.ID = int64(len(f.residents) + 1)
	f.residents[resident.Email] = resident
	return nil
}

func newAuthTestFixture(t *testing.T) (*AuthService, *auth.JWTService, *fakeResidentAccountStore) {
	t.Helper()

	hash := testPasswordHash(t)
	admins := &fakeAdminStore{admins: map[string]*models.Admin{
		"office@example.com": {ID: 1, Name: "Society Office", Email: "office@example.com", PasswordHash: hash},
	}}
	residents := &fakeResidentAccountStore{residents: map[string]*models.Resident{
		"meera@example.com": {ID: 7, Name: "Meera Nair", Email: "meera@example.com", PasswordHash: hash},
	}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "auth-service-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "societyhub.test",
	})

	svc := NewAuthService(admins, residents, jwtService, newTestViews(t), zerolog.Nop())
	return svc, jwtService, residents
}

func TestLogin(t *testing.T) {
	svc, jwtService, _ := newAuthTestFixture(t)

	t.Run("resident with correct password", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), "meera@example.com", testPassword, "resident")
		require.NoError(t, err)

		assert.Equal(t, "Bearer", resp.Token.TokenType)
		assert.Equal(t, int64(7), resp.User.SubjectID)
		assert.Equal(t, models.RoleResident, resp.User.Role)

		claims, err := jwtService.ValidateAndExtractClaims(resp.Token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.SubjectID)
		assert.Equal(t, string(models.RoleResident), claims.Role)
	})

	t.Run("admin with correct password", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), "office@example.com", testPassword, "admin")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, resp.User.Role)
		assert.Equal(t, int64(1), resp.User.SubjectID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "meera@example.com", "wrong-password", "resident")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", testPassword, "resident")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("resident credentials fail against the admin table", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "meera@example.com", testPassword, "admin")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user type", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "meera@example.com", testPassword, "superuser")
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("blank credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "", "", "resident")
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestRegister(t *testing.T) {
	t.Run("creates account and logs straight in", func(t *testing.T) {
		svc, jwtService, residents := newAuthTestFixture(t)

		resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Rohit Sharma",
			Email:    "rohit@example.com",
			Password: "s3cret-pass",
			Phone:    "9876543210",
			Address:  "B-204, Green Meadows",
		})
		require.NoError(t, err)

		assert.Equal(t, models.RoleResident, resp.User.Role)
		assert.NotZero(t, resp.User.SubjectID)

		stored := residents.residents["rohit@example.com"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "s3cret-pass", stored.PasswordHash, "password must never be stored in plaintext")

		_, err = jwtService.ValidateAndExtractClaims(resp.Token.AccessToken)
		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _, _ := newAuthTestFixture(t)

		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Other Meera",
			Email:    "meera@example.com",
			Password: "s3cret-pass",
			Phone:    "9876543210",
			Address:  "B-204",
		})
		require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("invalid fields", func(t *testing.T) {
		svc, _, _ := newAuthTestFixture(t)

		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Rohit",
			Email:    "bad-email",
			Password: "s3cret-pass",
			Phone:    "9876543210",
			Address:  "B-204",
		})
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
