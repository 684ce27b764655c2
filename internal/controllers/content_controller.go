package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/binit-singh7/shanti-yuwa-club/internal/services"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// ContentController serves the public (unauthenticated) site data.
type ContentController struct {
	contentService services.ContentService
}

func NewContentController(contentService services.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

func (c *ContentController) Home(w http.ResponseWriter, r *http.Request) {
	page, err := c.contentService.GetHomePage(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load home page", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

func (c *ContentController) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := c.contentService.ListPrograms(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load programs", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, programs)
}

func (c *ContentController) GetProgram(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	detail, err := c.contentService.GetProgramBySlug(r.Context(), slug)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

func (c *ContentController) Gallery(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	images, err := c.contentService.ListGalleryImages(r.Context(), r.URL.Query().Get("category"), limit)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load gallery", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, images)
}

func (c *ContentController) GalleryCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.contentService.ListGalleryCategories(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load gallery categories", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

func (c *ContentController) Team(w http.ResponseWriter, r *http.Request) {
	team, err := c.contentService.ListTeamMembers(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load team", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, team)
}

func (c *ContentController) Events(w http.ResponseWriter, r *http.Request) {
	events, err := c.contentService.ListUpcomingEvents(r.Context(), 0)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load events", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, events)
}
