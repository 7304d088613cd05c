package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	intconfig "alhudha-backend/internal/config"
	"alhudha-backend/internal/domain/models"
	"alhudha-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login accepts username or email.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		user         models.AdminUser
		passwordHash string
	)
	err := intconfig.DB.QueryRow(`
		SELECT id, username, email, COALESCE(full_name, ''), is_active, password_hash
		FROM admin_users
		WHERE username = ? OR email = ?`, req.Username, req.Username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.IsActive,
		&passwordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusUnauthorized, "Invalid username or password")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if !user.IsActive {
		respondError(c, http.StatusUnauthorized, "Account is disabled")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(intconfig.JWTSecret())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to sign token")
		return
	}

	_, _ = intconfig.DB.Exec(`UPDATE admin_users SET last_login = CURRENT_TIMESTAMP WHERE id = ?`, user.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   tokenString,
		"user":    user,
	})
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	var exists int
	if err := intconfig.DB.QueryRow(`
		SELECT COUNT(*) FROM admin_users WHERE username = ? OR email = ?`,
		req.Username, req.Email).Scan(&exists); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if exists > 0 {
		respondError(c, http.StatusBadRequest, "Username or email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO admin_users (username, password_hash, email, full_name, is_active)
		VALUES (?, ?, ?, ?, 1)`,
		req.Username, string(hash), req.Email, strings.TrimSpace(req.FullName))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin user created",
		"user": models.AdminUser{
			ID:       id,
			Username: req.Username,
			Email:    req.Email,
			FullName: strings.TrimSpace(req.FullName),
			IsActive: true,
		},
	})
}

// GET /api/auth/me (Bearer)
func Me(c *gin.Context) {
	id := middleware.AuthUserID(c)
	if id == 0 {
		respondError(c, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var user models.AdminUser
	err := intconfig.DB.QueryRow(`
		SELECT id, username, email, COALESCE(full_name, ''), is_active
		FROM admin_users
		WHERE id = ?`, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusUnauthorized, "Account no longer exists")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
