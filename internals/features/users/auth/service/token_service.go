// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"hostel_admin_backend/internals/constants"
	adminModel "hostel_admin_backend/internals/features/staff/admins/model"
)

const minBlacklistTTL = time.Minute

// BuildAccessClaims is the claim set the auth middleware reads back.
func BuildAccessClaims(admin adminModel.AdminModel, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":    admin.AdminID.String(),
		"emp_id": admin.EmpID,
		"name":   admin.Name,
		"role":   constants.RoleAdmin,
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
	}
}

func IssueAccessToken(admin adminModel.AdminModel, secret string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET is not set")
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(admin, now, ttl)).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, now.Add(ttl), nil
}

// ResolveBlacklistTTL keeps a revoked token listed until its own exp plus a
// minute of skew.
func ResolveBlacklistTTL(accessToken, secret string, now time.Time) time.Duration {
	if accessToken == "" || secret == "" {
		return minBlacklistTTL
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err != nil {
		return minBlacklistTTL
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return minBlacklistTTL
	}
	until := time.Unix(int64(exp), 0).Sub(now)
	if until <= 0 {
		return minBlacklistTTL
	}
	return until + time.Minute
}
