package controllers

import (
	"net/http"

	"github.com/binit-singh7/shanti-yuwa-club/internal/dtos"
	"github.com/binit-singh7/shanti-yuwa-club/internal/services"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

type ContactController struct {
	contactService services.ContactService
}

func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Submit – POST /api/v1/contact
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req dtos.ContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := c.contactService.Submit(r.Context(), req.Name, req.Email, req.Subject, req.Message); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to submit message", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.ContactResponse{
		Message: "Thank you for reaching out! We will get back to you soon.",
	})
}
