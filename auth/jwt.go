package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MansiS117/api-bookstore/models"
)

const tokenLifetime = 72 * time.Hour

var ErrTokenRevoked = errors.New("token has been revoked")

type Claims struct {
	UserID uint        `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueToken signs a bearer token for the user and records its jti so the
// token can later be revoked by logout.
func IssueToken(db *gorm.DB, user *models.User) (string, error) {
	jti := uuid.NewString()

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	if err := db.Create(&models.AuthToken{UserID: user.ID, JTI: jti}).Error; err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ParseToken verifies the signature and expiry and checks that the token's
// jti is still registered. A logged-out token fails with ErrTokenRevoked.
func ParseToken(db *gorm.DB, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	var record models.AuthToken
	if err := db.Where("jti = ?", claims.ID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenRevoked
		}
		return nil, err
	}

	return claims, nil
}

// RevokeToken deletes the jti record; the JWT itself becomes useless.
func RevokeToken(db *gorm.DB, jti string) error {
	return db.Where("jti = ?", jti).Delete(&models.AuthToken{}).Error
}
