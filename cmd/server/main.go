package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/binit-singh7/shanti-yuwa-club/internal/app"
	"github.com/binit-singh7/shanti-yuwa-club/internal/config"
	"github.com/binit-singh7/shanti-yuwa-club/internal/controllers"
	"github.com/binit-singh7/shanti-yuwa-club/internal/middleware"
	"github.com/binit-singh7/shanti-yuwa-club/internal/repositories"
	"github.com/binit-singh7/shanti-yuwa-club/internal/routes"
	"github.com/binit-singh7/shanti-yuwa-club/internal/services"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	otpRepo := repositories.NewOTPRepository(application.DB)
	memberRepo := repositories.NewMemberRepository(application.DB)
	tokenRepo := repositories.NewTokenRepository(application.DB)
	programRepo := repositories.NewProgramRepository(application.DB)
	galleryRepo := repositories.NewGalleryRepository(application.DB)
	teamRepo := repositories.NewTeamRepository(application.DB)
	eventRepo := repositories.NewEventRepository(application.DB)
	contactRepo := repositories.NewContactRepository(application.DB)
	attendanceRepo := repositories.NewAttendanceRepository(application.DB)
	participationRepo := repositories.NewParticipationRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	mailer := services.NewSendGridMailer(cfg)

	otpService := services.NewOTPService(otpRepo, mailer, cfg)
	jwtService := services.NewJWTService(cfg, tokenRepo)
	memberService := services.NewMemberService(
		memberRepo,
		otpRepo,
		eventRepo,
		programRepo,
		attendanceRepo,
		participationRepo,
		cfg,
	)
	contentService := services.NewContentService(programRepo, galleryRepo, teamRepo, eventRepo)
	contactService := services.NewContactService(contactRepo, mailer, cfg)
	adminService := services.NewAdminService(contentService, galleryRepo, teamRepo, eventRepo, contactRepo)
	cleanupService := services.NewCleanupService(otpService, tokenRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	otpController := controllers.NewOTPController(otpService)
	memberController := controllers.NewMemberController(memberService, jwtService)
	contentController := controllers.NewContentController(contentService)
	contactController := controllers.NewContactController(contactService)
	adminController := controllers.NewAdminController(adminService)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	// Health
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")

	// Email verification (form-encoded, dual AJAX/redirect contract)
	router.HandleFunc(routes.SendOTP, otpController.SendOTP).Methods("POST")
	router.HandleFunc(routes.VerifyOTP, otpController.VerifyOTP).Methods("POST")
	router.HandleFunc(routes.ResendOTP, otpController.ResendOTP).Methods("POST")

	// Public site
	router.HandleFunc(routes.Home, contentController.Home).Methods("GET")
	router.HandleFunc(routes.Programs, contentController.ListPrograms).Methods("GET")
	router.HandleFunc(routes.ProgramBySlug, contentController.GetProgram).Methods("GET")
	router.HandleFunc(routes.Gallery, contentController.Gallery).Methods("GET")
	router.HandleFunc(routes.GalleryCategories, contentController.GalleryCategories).Methods("GET")
	router.HandleFunc(routes.Team, contentController.Team).Methods("GET")
	router.HandleFunc(routes.Events, contentController.Events).Methods("GET")
	router.HandleFunc(routes.Contact, contactController.Submit).Methods("POST")

	// Member account endpoints
	router.HandleFunc(routes.MemberRegister, memberController.Register).Methods("POST")
	router.HandleFunc(routes.MemberLogin, memberController.Login).Methods("POST")
	router.HandleFunc(routes.MemberLogout, memberController.Logout).Methods("POST")
	router.HandleFunc(routes.MemberRefresh, memberController.Refresh).Methods("POST")

	// Member portal endpoints require a valid token
	portal := router.PathPrefix("/api/v1/member").Subrouter()
	portal.Use(middleware.AuthMiddleware(jwtService))
	portal.HandleFunc("/dashboard", memberController.Dashboard).Methods("GET")
	portal.HandleFunc("/profile", memberController.GetProfile).Methods("GET")
	portal.HandleFunc("/profile", memberController.UpdateProfile).Methods("PUT")
	portal.HandleFunc("/events", memberController.ListEvents).Methods("GET")
	portal.HandleFunc("/events/{id}/register", memberController.RegisterForEvent).Methods("POST")
	portal.HandleFunc("/events/{id}/cancel", memberController.CancelEventRegistration).Methods("POST")
	portal.HandleFunc("/programs", memberController.ListPrograms).Methods("GET")
	portal.HandleFunc("/programs/{slug}/enroll", memberController.EnrollInProgram).Methods("POST")
	portal.HandleFunc("/logout_all", memberController.LogoutAll).Methods("POST")

	// Content management endpoints require the configured admin key
	admin := router.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(middleware.AdminKeyMiddleware(cfg.AdminAPIKey))
	admin.HandleFunc("/programs", adminController.CreateProgram).Methods("POST")
	admin.HandleFunc("/events", adminController.CreateEvent).Methods("POST")
	admin.HandleFunc("/team", adminController.CreateTeamMember).Methods("POST")
	admin.HandleFunc("/gallery/categories", adminController.CreateGalleryCategory).Methods("POST")
	admin.HandleFunc("/gallery/images", adminController.CreateGalleryImage).Methods("POST")
	admin.HandleFunc("/contact/unread", adminController.ListUnreadMessages).Methods("GET")
	admin.HandleFunc("/contact/{id}/read", adminController.MarkMessageRead).Methods("POST")

	//----------------------------------------------------------------------
	// Scheduled cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()

	// Expired OTP records, hourly
	_, schErr1 := c.AddFunc("@hourly", func() {
		if e := cleanupService.SweepOTPs(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled OTP sweep failed")
		}
	})
	if schErr1 != nil {
		utils.Logger.WithError(schErr1).Fatal("Failed to schedule OTP sweep job")
	}

	// Expired refresh tokens, daily
	_, schErr2 := c.AddFunc("0 3 * * *", func() {
		if e := cleanupService.CleanupTokens(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled token cleanup failed")
		}
	})
	if schErr2 != nil {
		utils.Logger.WithError(schErr2).Fatal("Failed to schedule token cleanup job")
	}

	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Requested-With", "X-Admin-Key"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Server failed:", err)
	}
}
