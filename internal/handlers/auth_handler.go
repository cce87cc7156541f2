package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mishael-2584/odel-portal-api/internal/config"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/logincode"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
	"github.com/Mishael-2584/odel-portal-api/internal/notify"
	"github.com/Mishael-2584/odel-portal-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	codes  *logincode.Store
	notify *notify.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	codes *logincode.Store,
	dispatcher *notify.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		codes:  codes,
		notify: dispatcher,
	}
}

// --------- Requests ---------

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RequestCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// --------- Admin ---------

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin models.Admin
	if err := h.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong, please try again.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.adminToken(&admin)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign you in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
		"token": token,
	})
}

// --------- Student login codes ---------

func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A valid email is required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	code, err := logincode.GenerateCode()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_code", "Could not generate a login code.")
		return
	}

	if err := h.codes.Issue(c.Request.Context(), email, code); err != nil {
		httperr.Internal(c, "failed_to_store_code", "Could not issue a login code.")
		return
	}

	h.notify.Dispatch(notify.LoginCodeEmail(email, code))

	c.JSON(http.StatusOK, gin.H{
		"message": "A login code has been sent to your email.",
	})
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and 6-digit code are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.codes.Verify(c.Request.Context(), email, req.Code); err != nil {
		switch {
		case errors.Is(err, logincode.ErrTooManyAttempts):
			httperr.Unauthorized(c, "too_many_attempts", "Too many attempts; request a new code.")
		case errors.Is(err, logincode.ErrNotFound):
			httperr.Unauthorized(c, "code_expired", "The code has expired; request a new one.")
		case errors.Is(err, logincode.ErrMismatch):
			httperr.Unauthorized(c, "invalid_code", "The code is incorrect.")
		default:
			httperr.Internal(c, "internal_error", "Something went wrong, please try again.")
		}
		return
	}

	token, err := h.studentToken(email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign you in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": email,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) adminToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"sub":  admin.ID,
		"role": admin.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func (h *AuthHandler) studentToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  "student",
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
