// file: internals/helpers/token_claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil user_id dari c.Locals("user_id")
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// Ambil role_id numerik dari token. 0 kalau tidak ada.
func GetRoleIDFromToken(c *fiber.Ctx) int {
	if v, ok := c.Locals("role_id").(int); ok {
		return v
	}
	return 0
}

// Ambil role string dari token ("" kalau tidak ada).
func GetUserRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok {
		return v
	}
	return ""
}

// Ambil teacher_id dari token (uuid.Nil kalau bukan guru).
func GetTeacherIDFromToken(c *fiber.Ctx) uuid.UUID {
	if v, ok := c.Locals("teacher_id").(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil {
			return id
		}
	}
	return uuid.Nil
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
