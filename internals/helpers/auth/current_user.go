// file: internals/helpers/auth/current_user.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys written by the auth middleware.
const (
	LocalUserID   = "user_id"
	LocalRole     = "userRole"
	LocalEmpID    = "emp_id"
	LocalUserName = "user_name"
	LocalToken    = "access_token"
)

// CurrentUser is the signed-in staff member as the token describes them.
type CurrentUser struct {
	ID    string
	EmpID string
	Name  string
	Role  string
}

// GetUserIDFromLocals returns 401 when nobody is signed in.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocalUserID).(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not signed in")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id in token")
	}
	return id, nil
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRole).(string)
	return v
}

func GetCurrentUser(c *fiber.Ctx) CurrentUser {
	str := func(key string) string {
		v, _ := c.Locals(key).(string)
		return v
	}
	return CurrentUser{
		ID:    str(LocalUserID),
		EmpID: str(LocalEmpID),
		Name:  str(LocalUserName),
		Role:  str(LocalRole),
	}
}

// GetRawAccessToken prefers the token the middleware verified, then the
// Authorization header, then the cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	fields := strings.Fields(c.Get("Authorization"))
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return strings.Trim(fields[1], "\"'")
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}
