package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// It is constructed once in main and passed by reference; nothing reads the
// environment after startup.
type Config struct {
	AppName    string
	AppVersion string
	AppPort    string
	AppEnv     string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	JWTSecret        string
	JWTExpiryMinutes int

	GoogleClientID      string
	GoogleVerifyTimeout time.Duration
	// TrustClientIdentity falls back to caller-supplied identity fields when
	// Google verification fails. Demo/dev deployments only; defaults to off.
	TrustClientIdentity bool

	RecruiterAccessKey string
	AdminPasscode      string

	OTPTTLMinutes int

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	GeminiAPIKey string
	GeminiModel  string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users       string
	Problems    string
	Submissions string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppName:    getEnv("APP_NAME", "SkillBridge AI"),
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		AppPort:    getEnv("APP_PORT", "8000"),
		AppEnv:     getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:       getEnv("DYNAMO_TABLE_USERS", "users"),
			Problems:    getEnv("DYNAMO_TABLE_PROBLEMS", "problem_statements"),
			Submissions: getEnv("DYNAMO_TABLE_SUBMISSIONS", "submissions"),
		},
		JWTSecret:        getEnv("JWT_SECRET_KEY", "skillbridge-secret-key-change-in-production"),
		JWTExpiryMinutes: getEnvInt("JWT_EXPIRATION_MINUTES", 60),

		GoogleClientID:      getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleVerifyTimeout: time.Duration(getEnvInt("GOOGLE_VERIFY_TIMEOUT_SECONDS", 5)) * time.Second,
		TrustClientIdentity: getEnvBool("AUTH_TRUST_CLIENT_IDENTITY", false),

		RecruiterAccessKey: getEnv("RECRUITER_ACCESS_KEY", "SKILLBRIDGE-REC-2026"),
		AdminPasscode:      getEnv("ADMIN_PASSCODE", "SKILLBRIDGE-ADMIN-SECURE-2026"),

		OTPTTLMinutes: getEnvInt("OTP_TTL_MINUTES", 10),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@skillbridge.ai"),
		SMTPUsername: getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5500,http://127.0.0.1:5500"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
