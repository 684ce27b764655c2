package routes

const (
	// Health
	Health = "/health"

	// OTP verification endpoints. Form-encoded, always HTTP 200; the
	// front end signals AJAX with X-Requested-With.
	SendOTP   = "/send-otp"
	VerifyOTP = "/verify-otp"
	ResendOTP = "/resend-otp"

	// Public site
	Home              = "/api/v1/home"
	Programs          = "/api/v1/programs"
	ProgramBySlug     = "/api/v1/programs/{slug}"
	Gallery           = "/api/v1/gallery"
	GalleryCategories = "/api/v1/gallery/categories"
	Team              = "/api/v1/team"
	Events            = "/api/v1/events"
	Contact           = "/api/v1/contact"

	// Member portal
	MemberRegister = "/api/v1/member/register"
	MemberLogin    = "/api/v1/member/login"
	MemberLogout   = "/api/v1/member/logout"
	MemberRefresh  = "/api/v1/member/refresh_token"

	MemberLogoutAll = "/api/v1/member/logout_all"

	MemberDashboard     = "/api/v1/member/dashboard"
	MemberProfile       = "/api/v1/member/profile"
	MemberEvents        = "/api/v1/member/events"
	MemberEventRegister = "/api/v1/member/events/{id}/register"
	MemberEventCancel   = "/api/v1/member/events/{id}/cancel"
	MemberPrograms      = "/api/v1/member/programs"
	MemberProgramEnroll = "/api/v1/member/programs/{slug}/enroll"

	// Content management, guarded by the X-Admin-Key header.
	AdminPrograms          = "/api/v1/admin/programs"
	AdminEvents            = "/api/v1/admin/events"
	AdminTeam              = "/api/v1/admin/team"
	AdminGalleryCategories = "/api/v1/admin/gallery/categories"
	AdminGalleryImages     = "/api/v1/admin/gallery/images"
	AdminContactUnread     = "/api/v1/admin/contact/unread"
	AdminContactMarkRead   = "/api/v1/admin/contact/{id}/read"
)
