package services

import (
	"testing"

	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Contact{},
	))

	service := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewTokenRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return service, db
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		firstname string
		lastname  string
	}{
		{"first and last", "Jane Doe", "Jane", "Doe"},
		{"single name", "Jane", "Jane", ""},
		{"splits at first space only", "Anna Maria Muster", "Anna", "Maria Muster"},
		{"surrounding whitespace", "  Jane Doe  ", "Jane", "Doe"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			firstname, lastname := SplitName(tt.input)
			require.Equal(t, tt.firstname, firstname)
			require.Equal(t, tt.lastname, lastname)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	service, db := setupAuthService(t)

	user, token, err := service.Register(RegisterInput{
		Name:                "Jane Doe",
		Email:               "jane@x.com",
		Password:            "secret",
		ConfirmPassword:     "secret",
		AcceptPrivacyPolicy: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.PasswordHash)
	require.NotEqual(t, "secret", *stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("secret")))
}

func TestAuthService_Register_ValidationFailuresCreateNothing(t *testing.T) {
	service, db := setupAuthService(t)

	_, _, err := service.Register(RegisterInput{
		Name:                "Jane Doe",
		Email:               "jane@x.com",
		Password:            "secret",
		ConfirmPassword:     "other",
		AcceptPrivacyPolicy: true,
	})
	require.ErrorIs(t, err, ErrPasswordMismatch)

	_, _, err = service.Register(RegisterInput{
		Name:            "Jane Doe",
		Email:           "jane@x.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	})
	require.ErrorIs(t, err, ErrPolicyNotAccepted)

	var userCount, contactCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Contact{}).Count(&contactCount)
	require.Zero(t, userCount)
	require.Zero(t, contactCount)
}

func TestAuthService_Register_RollsBackOnContactFailure(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Leave the contacts table out so the contact insert fails after the
	// user insert succeeded.
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
	))

	service := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewTokenRepository(db),
	)

	input := RegisterInput{
		Name:                "Jane Doe",
		Email:               "jane@x.com",
		Password:            "secret",
		ConfirmPassword:     "secret",
		AcceptPrivacyPolicy: true,
	}

	_, _, err = service.Register(input)
	require.ErrorIs(t, err, repository.ErrCreateContact)

	var userCount, tokenCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.AuthToken{}).Count(&tokenCount)
	require.Zero(t, userCount, "failed registration must not leave a user behind")
	require.Zero(t, tokenCount, "failed registration must not leave a token behind")

	// A retry with the same email must not be rejected as taken.
	_, _, err = service.Register(input)
	require.NotErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_GuestLogin_StableAcrossCalls(t *testing.T) {
	service, _ := setupAuthService(t)

	first, firstToken, err := service.GuestLogin()
	require.NoError(t, err)
	require.Nil(t, first.PasswordHash, "guest has no usable password")

	second, secondToken, err := service.GuestLogin()
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, firstToken, secondToken)
}

func TestAuthService_ResolveToken(t *testing.T) {
	service, _ := setupAuthService(t)

	user, token, err := service.GuestLogin()
	require.NoError(t, err)

	resolved, err := service.ResolveToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
	require.Equal(t, user.Email, resolved.Email)

	_, err = service.ResolveToken("unknown")
	require.ErrorIs(t, err, ErrInvalidToken)
}
