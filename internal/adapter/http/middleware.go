package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jobportal/internal/domain"
)

const tokenTTL = 7 * 24 * time.Hour

// issueToken signs a 7-day token carrying the user id and role.
func (h *Handler) issueToken(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": u.ID.String(),
		"role":   u.Role,
		"exp":    time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
}

// RequireAuth verifies the Bearer token and stores the caller identity in
// the request locals.
func (h *Handler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return errJSON(c, fiber.StatusUnauthorized, "Access token required")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return errJSON(c, fiber.StatusForbidden, "Invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return errJSON(c, fiber.StatusForbidden, "Invalid token")
	}
	rawID, _ := claims["userId"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return errJSON(c, fiber.StatusForbidden, "Invalid token")
	}
	role, _ := claims["role"].(string)

	c.Locals("userID", userID)
	c.Locals("role", role)
	return c.Next()
}

// RequireRecruiter guards recruiter-only operations. Must run after
// RequireAuth.
func (h *Handler) RequireRecruiter(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != domain.RoleRecruiter {
		return errJSON(c, fiber.StatusForbidden, "Only recruiters can perform this action")
	}
	return c.Next()
}

func callerID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals("userID").(uuid.UUID)
	return id
}
