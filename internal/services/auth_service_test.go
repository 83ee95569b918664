package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/techforing/project-tracking-api/internal/models"
	"github.com/techforing/project-tracking-api/internal/repository"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db))
}

func registerInput() RegisterInput {
	return RegisterInput{
		UserName:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Anders",
		Password:  "supersecret",
		Password2: "supersecret",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc := setupAuthService(t)

	user, err := svc.Register(registerInput())
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	// The stored value is a hash, not the plaintext.
	require.NotEqual(t, "supersecret", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.UserName = "alice2"
	_, err = svc.Register(input)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_UserNameTaken(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.Email = "alice2@example.com"
	_, err = svc.Register(input)
	require.ErrorIs(t, err, ErrUserNameTaken)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	svc := setupAuthService(t)

	input := registerInput()
	input.Password2 = "different"
	_, err := svc.Register(input)
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestAuthService_Login(t *testing.T) {
	svc := setupAuthService(t)

	created, err := svc.Register(registerInput())
	require.NoError(t, err)

	user, err := svc.Login(LoginInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	_, err = svc.Login(LoginInput{Email: "alice@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email fails with the same error as a wrong password.
	_, err = svc.Login(LoginInput{Email: "nobody@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
