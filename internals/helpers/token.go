// file: internals/helpers/token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth middleware.
const (
	LocalsStaffID   = "staff_id"
	LocalsPrivilege = "privilege_level"
)

// GetStaffID returns the authenticated staff id, or uuid.Nil when the
// request carries no (valid) staff token.
func GetStaffID(c *fiber.Ctx) uuid.UUID {
	if v, ok := c.Locals(LocalsStaffID).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

// GetPrivilegeLevel returns the requester's staff privilege level, or ""
// for unauthenticated callers. The grade visibility gate takes this value
// as an explicit argument; nothing below the handlers reads locals.
func GetPrivilegeLevel(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsPrivilege).(string); ok {
		return v
	}
	return ""
}
