package utils

import (
	"fmt"
	"medtrack-portal/internal/pkg/constvars"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateSessionJWT(sessionID, secret string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.SessionJWTClaimID:  sessionID,
		constvars.SessionJWTClaimExp: expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateObjectName builds a unique object key for an uploaded file.
func GenerateObjectName(prefix, owner, originalFileName string) string {
	extension := strings.ToLower(filepath.Ext(originalFileName))
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s%s_%s_%s%s", prefix, owner, timestamp, uuid.New().String()[:8], extension)
}
