package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/binit-singh7/shanti-yuwa-club/internal/dtos"
	"github.com/binit-singh7/shanti-yuwa-club/internal/routes"
	"github.com/binit-singh7/shanti-yuwa-club/internal/services"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// OTPController serves the email verification endpoints. The contract
// is form-encoded input and HTTP 200 for every outcome: AJAX callers
// (X-Requested-With: XMLHttpRequest) get a JSON body with success and
// message/error, browser posts get a redirect plus a flash cookie.
type OTPController struct {
	otpService services.OTPService
}

func NewOTPController(otpService services.OTPService) *OTPController {
	return &OTPController{otpService: otpService}
}

const (
	flashCookieName      = "flash"
	flashLevelCookieName = "flash_level"

	registerPage  = "/register"
	verifyOTPPage = "/verify-otp"
)

var otpValidate = validator.New()

// formField reads a trimmed form value. PostFormValue parses the body
// on first use; a malformed body just reads as empty fields, which the
// struct validation then rejects.
func formField(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostFormValue(name))
}

// ---------------------------------------------------------------------
// SendOTP – POST /send-otp
// ---------------------------------------------------------------------
func (c *OTPController) SendOTP(w http.ResponseWriter, r *http.Request) {
	req := dtos.SendOTPRequest{Email: formField(r, "email")}
	if err := otpValidate.Struct(&req); err != nil {
		c.respondError(w, r, "Email is required", c.backPage(r))
		return
	}

	if _, err := c.otpService.Issue(r.Context(), req.Email); err != nil {
		// Persist and dispatch failures collapse into one message so
		// callers cannot distinguish store state from mail state.
		c.respondError(w, r, "Failed to send OTP. Please try again later.", c.backPage(r))
		return
	}

	c.respondSuccess(w, r, fmt.Sprintf("OTP sent to %s. Check your email!", req.Email), routes.VerifyOTP)
}

// ---------------------------------------------------------------------
// VerifyOTP – POST /verify-otp
// ---------------------------------------------------------------------
func (c *OTPController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	req := dtos.VerifyOTPRequest{
		Email: formField(r, "email"),
		OTP:   formField(r, "otp"),
	}
	if err := otpValidate.Struct(&req); err != nil {
		c.respondError(w, r, "Email and OTP are required", verifyOTPPage)
		return
	}

	result, err := c.otpService.Verify(r.Context(), req.Email, req.OTP)
	if err != nil {
		utils.Logger.WithError(err).Error("OTP verification failed on a storage error")
		c.respondError(w, r, "Verification failed. Please try again later.", verifyOTPPage)
		return
	}

	if result.Outcome == services.OutcomeSuccess {
		c.respondSuccess(w, r, result.Message, registerPage)
		return
	}
	c.respondError(w, r, result.Message, verifyOTPPage)
}

// ---------------------------------------------------------------------
// ResendOTP – POST /resend-otp (JSON-only AJAX endpoint)
// ---------------------------------------------------------------------
func (c *OTPController) ResendOTP(w http.ResponseWriter, r *http.Request) {
	req := dtos.ResendOTPRequest{Email: formField(r, "email")}
	if err := otpValidate.Struct(&req); err != nil {
		c.respondJSON(w, dtos.OTPResponse{Success: false, Error: "Email is required"})
		return
	}

	if _, err := c.otpService.Resend(r.Context(), req.Email); err != nil {
		if errors.Is(err, utils.ErrResendCooldown) {
			c.respondJSON(w, dtos.OTPResponse{Success: false, Error: "Please wait before requesting a new OTP"})
			return
		}
		c.respondJSON(w, dtos.OTPResponse{Success: false, Error: "Failed to send OTP. Please try again later."})
		return
	}

	c.respondJSON(w, dtos.OTPResponse{Success: true, Message: "OTP sent successfully!"})
}

/* ------------------------------------------------------------------
   Response helpers
------------------------------------------------------------------- */

func isAJAX(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

func (c *OTPController) respondJSON(w http.ResponseWriter, body dtos.OTPResponse) {
	utils.RespondWithJSON(w, http.StatusOK, body)
}

func (c *OTPController) respondSuccess(w http.ResponseWriter, r *http.Request, message, nextPage string) {
	if isAJAX(r) {
		c.respondJSON(w, dtos.OTPResponse{Success: true, Message: message})
		return
	}
	setFlash(w, message, "success")
	http.Redirect(w, r, nextPage, http.StatusSeeOther)
}

func (c *OTPController) respondError(w http.ResponseWriter, r *http.Request, message, nextPage string) {
	if isAJAX(r) {
		c.respondJSON(w, dtos.OTPResponse{Success: false, Error: message})
		return
	}
	setFlash(w, message, "error")
	http.Redirect(w, r, nextPage, http.StatusSeeOther)
}

// backPage returns the Referer path when present, otherwise the
// registration page.
func (c *OTPController) backPage(r *http.Request) string {
	if ref := r.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return registerPage
}

// setFlash stores a one-shot message the front end renders after the
// redirect.
func setFlash(w http.ResponseWriter, message, level string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     flashLevelCookieName,
		Value:    level,
		Path:     "/",
		MaxAge:   60,
		SameSite: http.SameSiteLaxMode,
	})
}
