package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/binit-singh7/shanti-yuwa-club/internal/dtos"
	"github.com/binit-singh7/shanti-yuwa-club/internal/middleware"
	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/services"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

type MemberController struct {
	memberService services.MemberService
	jwtService    services.JWTService
}

func NewMemberController(memberService services.MemberService, jwtService services.JWTService) *MemberController {
	return &MemberController{memberService: memberService, jwtService: jwtService}
}

var memberValidate = validator.New()

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return false
	}
	if err := memberValidate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", err.Error())
		return false
	}
	return true
}

// ---------------------------------------------------------------------
// Register – POST /api/v1/member/register
// ---------------------------------------------------------------------
func (c *MemberController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member, err := c.memberService.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmailNotVerified):
			utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeEmailNotVerified,
				"Please verify your email before registering", nil)
		case errors.Is(err, utils.ErrEmailExists):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict,
				"An account with this email already exists", nil)
		case errors.Is(err, utils.ErrInvalidEmail):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation,
				"Invalid email address", nil)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
				"Registration failed", nil, err)
		}
		return
	}

	c.respondWithTokens(w, r, member.ID, http.StatusCreated, member)
}

// ---------------------------------------------------------------------
// Login – POST /api/v1/member/login
// ---------------------------------------------------------------------
func (c *MemberController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member, err := c.memberService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials,
				"Invalid email or password", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Login failed", nil, err)
		return
	}

	c.respondWithTokens(w, r, member.ID, http.StatusOK, member)
}

// ---------------------------------------------------------------------
// Refresh – POST /api/v1/member/refresh_token
// ---------------------------------------------------------------------
func (c *MemberController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dtos.RefreshRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	access, refresh, err := c.jwtService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized,
			"Invalid or expired refresh token", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RefreshResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// ---------------------------------------------------------------------
// Logout – POST /api/v1/member/logout
// ---------------------------------------------------------------------
func (c *MemberController) Logout(w http.ResponseWriter, r *http.Request) {
	var req dtos.LogoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.jwtService.Logout(r.Context(), req.RefreshToken); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Logout failed", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// ---------------------------------------------------------------------
// LogoutAll – POST /api/v1/member/logout_all (auth required)
// ---------------------------------------------------------------------
func (c *MemberController) LogoutAll(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDFromContext(r.Context())

	if err := c.jwtService.LogoutAll(r.Context(), memberID); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Logout failed", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "All sessions revoked"})
}

/* ------------------------------------------------------------------
   Portal (auth required)
------------------------------------------------------------------- */

func (c *MemberController) Dashboard(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDFromContext(r.Context())

	dashboard, err := c.memberService.GetDashboard(r.Context(), memberID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load dashboard", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dashboard)
}

func (c *MemberController) GetProfile(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDFromContext(r.Context())

	member, err := c.memberService.GetProfile(r.Context(), memberID)
	if err != nil || member == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Member not found", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, member)
}

func (c *MemberController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDFromContext(r.Context())

	var req dtos.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member, err := c.memberService.UpdateProfile(r.Context(), memberID,
		req.FirstName, req.LastName, req.Phone, req.Bio, req.AvatarURL)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to update profile", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, member)
}

func (c *MemberController) ListEvents(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDFromContext(r.Context())

	events, err := c.memberService.ListEvents(r.Context(), memberID, r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load events", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, events)
}

func (c *MemberController) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDFromContext(r.Context())

	eventID, ok := parsePathID(w, r)
	if !ok {
		return
	}

	att, err := c.memberService.RegisterForEvent(r.Context(), memberID, eventID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, att)
}

func (c *MemberController) CancelEventRegistration(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDFromContext(r.Context())

	eventID, ok := parsePathID(w, r)
	if !ok {
		return
	}

	if err := c.memberService.CancelEventRegistration(r.Context(), memberID, eventID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Registration cancelled"})
}

func (c *MemberController) ListPrograms(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDFromContext(r.Context())

	overview, err := c.memberService.GetProgramOverview(r.Context(), memberID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load programs", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, overview)
}

func (c *MemberController) EnrollInProgram(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDFromContext(r.Context())

	slug := mux.Vars(r)["slug"]
	part, err := c.memberService.EnrollInProgram(r.Context(), memberID, slug)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, part)
}

/* ------------------------------------------------------------------
   Helpers
------------------------------------------------------------------- */

func parsePathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id", nil, err)
		return uuid.Nil, false
	}
	return id, true
}

func (c *MemberController) respondWithTokens(w http.ResponseWriter, r *http.Request, memberID uuid.UUID, status int, member *models.Member) {
	access, err := c.jwtService.GenerateAccessToken(r.Context(), memberID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to issue tokens", nil, err)
		return
	}
	refresh, err := c.jwtService.GenerateRefreshToken(r.Context(), memberID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to issue tokens", nil, err)
		return
	}

	utils.RespondWithJSON(w, status, dtos.AuthResponse{
		Member:       member,
		AccessToken:  access,
		RefreshToken: refresh.Token,
	})
}
