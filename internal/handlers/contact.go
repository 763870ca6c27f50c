package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/mbeckert/taskboard-api/internal/errors"
	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/services"
)

// ContactHandler coordinates contact HTTP handlers.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

type contactRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

type contactPatchRequest struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
}

// List returns all contacts.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// Create creates a new contact.
func (h *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contact := models.Contact{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := h.contactService.Create(&contact); err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// Get returns a contact by ID.
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Get(id)
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// Update replaces a contact from a full payload.
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Get(id)
	if err != nil {
		respondContactError(c, err)
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contact.Firstname = req.Firstname
	contact.Lastname = req.Lastname
	contact.Email = req.Email
	contact.Phone = req.Phone

	if err := h.contactService.Update(contact); err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// Patch updates only the fields present in the request body.
func (h *ContactHandler) Patch(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Get(id)
	if err != nil {
		respondContactError(c, err)
		return
	}

	var req contactPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Firstname != nil {
		contact.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		contact.Lastname = *req.Lastname
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}

	if err := h.contactService.Update(contact); err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// Delete removes a contact.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(id); err != nil {
		respondContactError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func contactID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid contact id")
		return 0, false
	}
	return id, true
}

func respondContactError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContactNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
