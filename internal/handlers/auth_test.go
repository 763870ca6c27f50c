package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mbeckert/taskboard-api/internal/dto"
	apierrors "github.com/mbeckert/taskboard-api/internal/errors"
	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/repository"
	"github.com/mbeckert/taskboard-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Contact{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	authService := services.NewAuthService(userRepo, tokenRepo)
	handler := NewAuthHandler(authService)

	r := gin.New()
	r.POST("/auth/registration/", handler.Register)
	r.POST("/auth/login/", handler.Login)
	r.POST("/auth/guest-login/", handler.GuestLogin)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
	}
}

func (env authTestEnv) postJSON(t *testing.T, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	env.router.ServeHTTP(w, req)
	return w
}

func registrationPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":                "Jane Doe",
		"email":               "jane@x.com",
		"password":            "p1",
		"confirmPassword":     "p1",
		"acceptPrivacyPolicy": true,
	}
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/auth/registration/", registrationPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	require.Equal(t, "Jane Doe", response.User.Name)
	require.Equal(t, "jane@x.com", response.User.Email)

	// Registration also seeds the address book with a contact split from the
	// registration name.
	var contact models.Contact
	require.NoError(t, env.db.Where("email = ?", "jane@x.com").First(&contact).Error)
	require.Equal(t, "Jane", contact.Firstname)
	require.Equal(t, "Doe", contact.Lastname)
	require.Empty(t, contact.Phone)

	var userCount, contactCount, tokenCount int64
	env.db.Model(&models.User{}).Count(&userCount)
	env.db.Model(&models.Contact{}).Count(&contactCount)
	env.db.Model(&models.AuthToken{}).Count(&tokenCount)
	require.EqualValues(t, 1, userCount)
	require.EqualValues(t, 1, contactCount)
	require.EqualValues(t, 1, tokenCount)
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := registrationPayload()
	payload["confirmPassword"] = "p2"

	w := env.postJSON(t, "/auth/registration/", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var userCount, contactCount int64
	env.db.Model(&models.User{}).Count(&userCount)
	env.db.Model(&models.Contact{}).Count(&contactCount)
	require.EqualValues(t, 0, userCount)
	require.EqualValues(t, 0, contactCount)
}

func TestAuthHandler_Register_PolicyNotAccepted(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := registrationPayload()
	payload["acceptPrivacyPolicy"] = false

	w := env.postJSON(t, "/auth/registration/", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/auth/registration/", registrationPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.postJSON(t, "/auth/registration/", registrationPayload())
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_ReusesToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/auth/registration/", registrationPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var registered dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))

	credentials := map[string]string{"email": "jane@x.com", "password": "p1"}

	w = env.postJSON(t, "/auth/login/", credentials)
	require.Equal(t, http.StatusOK, w.Code)

	var first dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.Equal(t, registered.Token, first.Token)

	w = env.postJSON(t, "/auth/login/", credentials)
	require.Equal(t, http.StatusOK, w.Code)

	var second dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	require.Equal(t, first.Token, second.Token)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/auth/registration/", registrationPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	// Wrong password and unknown email must be indistinguishable.
	wrongPassword := env.postJSON(t, "/auth/login/", map[string]string{
		"email":    "jane@x.com",
		"password": "wrong",
	})
	unknownEmail := env.postJSON(t, "/auth/login/", map[string]string{
		"email":    "nobody@x.com",
		"password": "p1",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(wrongPassword.Body.Bytes(), &apiErr))
	require.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestAuthHandler_GuestLogin_Idempotent(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/auth/guest-login/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var first dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.Equal(t, "guest@example.com", first.User.Email)
	require.Equal(t, "Guest User", first.User.Name)

	w = env.postJSON(t, "/auth/guest-login/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var second dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	require.Equal(t, first.User.ID, second.User.ID)
	require.Equal(t, first.Token, second.Token)

	var userCount int64
	env.db.Model(&models.User{}).Count(&userCount)
	require.EqualValues(t, 1, userCount)
}

func TestAuthHandler_GuestCannotLoginWithPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/auth/guest-login/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, password := range []string{"", "guest", "anything"} {
		w = env.postJSON(t, "/auth/login/", map[string]string{
			"email":    "guest@example.com",
			"password": password,
		})
		require.NotEqual(t, http.StatusOK, w.Code, "password %q must not log in as guest", password)
	}
}
