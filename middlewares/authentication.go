// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"vsprice-server/commons"
	"vsprice-server/db"
	"vsprice-server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func VerifyAdminMiddleware() func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := c.Logger()

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Error("Authorization header missing or invalid.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Bearer token is required",
				}
			}

			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				sessionToken := after

				token, err := jwt.Parse(sessionToken, func(t *jwt.Token) (any, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, errors.New("unexpected signing method")
					}
					return []byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key")), nil
				})

				if err == nil && token.Valid {
					claims, ok := token.Claims.(jwt.MapClaims)
					if ok {
						sessionID := claims["sid"]
						tokenID := claims["jti"]

						session := models.Session{}
						err = db.Conn.Where("id = ? AND token = ?", sessionID, tokenID).First(&session).Error
						if err == nil && !session.ExpiresAt.Before(time.Now()) {
							now := time.Now()
							session.LastUsedAt = &now

							if err := db.Conn.Save(&session).Error; err != nil {
								logger.Error("Failed to update session LastUsedAt: ", err)
							}

							c.Set("session", session)
							return next(c)
						}
					}
				}
			}

			logger.Error("Authentication failed.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired authentication token",
			}
		}
	}
}
