// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"time"
	"vsprice-server/commons"
	"vsprice-server/crypto"
	"vsprice-server/db"
	"vsprice-server/models"
	"vsprice-server/passwordcheck"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AdminLoginHandler godoc
// @Summary      Admin login
// @Description  Verifies the admin password and returns a session token for the catalog admin endpoints.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  LoginRequest  true  "Login request payload"
// @Success      200 {object} AuthResponse       "Login successful"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/auth/login [post]
func AdminLoginHandler(c echo.Context) error {
	logger := c.Logger()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request payload:", err)
		return echo.ErrBadRequest
	}

	if req.Password == "" {
		logger.Error("Password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required",
		}
	}

	newCrypto := crypto.NewCrypto()
	credential := models.AdminCredential{}
	if err := db.Conn.First(&credential).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Admin credential not seeded.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Admin access is not configured",
			}
		}
		logger.Errorf("Failed to load admin credential: %v", err)
		return echo.ErrInternalServerError
	}

	if err := newCrypto.VerifyPassword(req.Password, credential.PasswordHash); err != nil {
		logger.Error("Password verification failed.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid password. Please try again.",
		}
	}

	sessionToken, err := crypto.GenerateHexID("st_", 32)
	if err != nil {
		logger.Errorf("Failed to generate session token: %v", err)
		return echo.ErrInternalServerError
	}

	sessionExp := time.Now().Add(12 * time.Hour)
	sessionLastUsed := time.Now()
	session := models.Session{
		Token:      sessionToken,
		LastUsedAt: &sessionLastUsed,
		ExpiresAt:  &sessionExp,
	}
	if err := db.Conn.Create(&session).Error; err != nil {
		logger.Errorf("Failed to create session: %v", err)
		return echo.ErrInternalServerError
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "https://vsprice-server.com",
		"iat": time.Now().Unix(),
		"aud": "https://api.vsprice-server.com",
		"jti": sessionToken,
		"sid": session.ID,
		"exp": sessionExp.Unix(),
	})
	tokenString, err := token.SignedString([]byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key")))
	if err != nil {
		logger.Errorf("Failed to sign token: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, AuthResponse{SessionToken: tokenString, Message: "Login successful"})
}

// AdminLogoutHandler godoc
// @Summary      Admin logout
// @Description  Deletes the current admin session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200 {object} GenericResponse  "Logout successful"
// @Failure      401 {object} echo.HTTPError   "Unauthorized"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /v1/auth/logout [post]
func AdminLogoutHandler(c echo.Context) error {
	logger := c.Logger()

	session, ok := c.Get("session").(models.Session)
	if !ok {
		logger.Error("No session in context.")
		return echo.ErrUnauthorized
	}

	if err := db.Conn.Unscoped().Delete(&session).Error; err != nil {
		logger.Errorf("Failed to delete session: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, GenericResponse{Message: "Logout successful"})
}

// ChangePasswordHandler godoc
// @Summary      Change the admin password
// @Description  Verifies the current password, validates the new one against the credential policy, and rehashes it.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        changePasswordRequest  body  ChangePasswordRequest  true  "Change password payload"
// @Success      200 {object} GenericResponse  "Password changed successfully"
// @Failure      400 {object} echo.HTTPError   "Bad request or weak password"
// @Failure      401 {object} echo.HTTPError   "Unauthorized"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /v1/auth/password [put]
func ChangePasswordHandler(c echo.Context) error {
	logger := c.Logger()

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid change password payload:", err)
		return echo.ErrBadRequest
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "current_password and new_password fields are required",
		}
	}

	newCrypto := crypto.NewCrypto()
	credential := models.AdminCredential{}
	if err := db.Conn.First(&credential).Error; err != nil {
		logger.Errorf("Failed to load admin credential: %v", err)
		return echo.ErrInternalServerError
	}

	if err := newCrypto.VerifyPassword(req.CurrentPassword, credential.PasswordHash); err != nil {
		logger.Error("Current password verification failed.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Current password is incorrect",
		}
	}

	if err := passwordcheck.ValidatePassword(c.Request().Context(), req.NewPassword); err != nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	hash, err := newCrypto.HashPassword(req.NewPassword)
	if err != nil {
		logger.Errorf("Failed to hash new password: %v", err)
		return echo.ErrInternalServerError
	}

	credential.PasswordHash = hash
	if err := db.Conn.Save(&credential).Error; err != nil {
		logger.Errorf("Failed to save new credential: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, GenericResponse{Message: "Password changed successfully"})
}
