package config

import (
	"os"
	"strconv"
	"time"

	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// Config holds all application configuration. It is built once at
// startup and passed down explicitly; nothing mutates it afterwards.
type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	DBUrl            string

	JWTSecret     []byte
	TokenExpiry   time.Duration
	RefreshExpiry time.Duration

	SendGridAPIKey      string
	SendGridFromEmail   string
	ContactInboxEmail   string
	SendGridSandboxMode bool
	ValidateEmailMX     bool

	// AdminAPIKey guards the content management endpoints. When empty
	// they respond 401 unconditionally.
	AdminAPIKey string

	OTPCodeLength     int
	OTPExpiry         time.Duration
	OTPMaxAttempts    int
	OTPResendCooldown time.Duration
	OTPSweepRetention time.Duration
}

const (
	AppName          = "club-backend"
	OrganizationName = "Shanti Yuwa Club"

	DefaultTokenExpiry   = 15 * time.Minute
	DefaultRefreshExpiry = 7 * 24 * time.Hour

	OTPCodeLength     = 6
	OTPExpiry         = 10 * time.Minute
	OTPMaxAttempts    = 5
	OTPResendCooldown = 60 * time.Second
	OTPSweepRetention = 1 * time.Hour
)

// LoadConfig reads the runtime environment and fails fast on anything
// the service cannot run without.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}
	sgAPI := os.Getenv("SENDGRID_API_KEY")
	if sgAPI == "" {
		utils.Logger.Fatal("SENDGRID_API_KEY env var is missing")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		utils.Logger.Fatal("SENDGRID_FROM_EMAIL env var is missing")
	}

	contactInbox := os.Getenv("CONTACT_INBOX_EMAIL")
	if contactInbox == "" {
		contactInbox = fromEmail
	}

	utils.Logger.Infof("Loaded config for %s", AppName)

	return &Config{
		OrganizationName: OrganizationName,
		AppName:          AppName,
		AppPort:          appPort,
		AppUrl:           appURL,
		DBUrl:            dbURL,

		JWTSecret:     []byte(jwtSecret),
		TokenExpiry:   DefaultTokenExpiry,
		RefreshExpiry: DefaultRefreshExpiry,

		SendGridAPIKey:      sgAPI,
		SendGridFromEmail:   fromEmail,
		ContactInboxEmail:   contactInbox,
		SendGridSandboxMode: envBool("SENDGRID_SANDBOX_MODE"),
		ValidateEmailMX:     envBool("VALIDATE_EMAIL_MX"),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		OTPCodeLength:     OTPCodeLength,
		OTPExpiry:         OTPExpiry,
		OTPMaxAttempts:    OTPMaxAttempts,
		OTPResendCooldown: OTPResendCooldown,
		OTPSweepRetention: OTPSweepRetention,
	}
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
