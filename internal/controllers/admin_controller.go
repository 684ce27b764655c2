package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/binit-singh7/shanti-yuwa-club/internal/dtos"
	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/services"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// AdminController serves the content management API. Every route here
// sits behind the admin key middleware.
type AdminController struct {
	adminService services.AdminService
}

func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

func (c *AdminController) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateProgramRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	program, err := c.adminService.CreateProgram(r.Context(), req.Title, req.ShortDescription, req.Content, req.ImageURL)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to create program", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, program)
}

func (c *AdminController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	event, err := c.adminService.CreateEvent(r.Context(), req.Title, req.Date, req.Location, req.Description, req.ImageURL)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to create event", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, event)
}

func (c *AdminController) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTeamMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member := &models.TeamMember{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		Facebook:     req.Facebook,
		Instagram:    req.Instagram,
		Twitter:      req.Twitter,
		DisplayOrder: req.DisplayOrder,
	}
	if err := c.adminService.CreateTeamMember(r.Context(), member); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to create team member", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, member)
}

func (c *AdminController) CreateGalleryCategory(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateGalleryCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := c.adminService.CreateGalleryCategory(r.Context(), req.Name)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to create gallery category", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, category)
}

func (c *AdminController) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateGalleryImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// uuid4 format is already validated by the struct tag.
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Invalid category id", nil, err)
		return
	}

	image, err := c.adminService.CreateGalleryImage(r.Context(), req.Title, categoryID, req.ImageURL, req.Description)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to create gallery image", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, image)
}

func (c *AdminController) ListUnreadMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := c.adminService.ListUnreadMessages(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to list messages", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, messages)
}

func (c *AdminController) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	if err := c.adminService.MarkMessageRead(r.Context(), id); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to mark message read", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Marked as read"})
}
