package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":3000"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	return Env{
		AppAddr: appAddr,
		GinMode: ginMode,
	}
}

// UploadDir is where traveler document scans are stored as flat files.
func UploadDir() string {
	dir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// JWTSecret signs admin session tokens. Override in production.
func JWTSecret() []byte {
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		return []byte(v)
	}
	return []byte("super-secret-key-change-me")
}

// SeedAdminPassword is the password for the first-run superadmin account.
func SeedAdminPassword() string {
	if v := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")); v != "" {
		return v
	}
	return "admin123"
}
