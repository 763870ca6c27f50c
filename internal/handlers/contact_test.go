package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/repository"
	"github.com/mbeckert/taskboard-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupContactRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Contact{}))

	handler := NewContactHandler(
		services.NewContactService(repository.NewContactRepository(db)),
	)

	r := gin.New()
	r.GET("/contacts/", handler.List)
	r.POST("/contacts/", handler.Create)
	r.GET("/contacts/:id/", handler.Get)
	r.PUT("/contacts/:id/", handler.Update)
	r.PATCH("/contacts/:id/", handler.Patch)
	r.DELETE("/contacts/:id/", handler.Delete)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return r
}

func TestContactHandler_CRUD(t *testing.T) {
	r := setupContactRouter(t)

	w := doJSON(t, r, http.MethodPost, "/contacts/", map[string]string{
		"firstname": "Max",
		"lastname":  "Muster",
		"email":     "max@x.com",
		"phone":     "+49 123 456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var contact models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contact))
	require.NotZero(t, contact.ID)

	w = doJSON(t, r, http.MethodGet, "/contacts/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/contacts/%d/", contact.ID), map[string]string{
		"phone": "+49 999 000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var patched models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	require.Equal(t, "+49 999 000", patched.Phone)
	require.Equal(t, "Max", patched.Firstname)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/contacts/%d/", contact.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/contacts/%d/", contact.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactHandler_InvalidEmail(t *testing.T) {
	r := setupContactRouter(t)

	w := doJSON(t, r, http.MethodPost, "/contacts/", map[string]string{
		"email": "not-an-email",
		"phone": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandler_UnknownID(t *testing.T) {
	r := setupContactRouter(t)

	w := doJSON(t, r, http.MethodGet, "/contacts/42/", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
