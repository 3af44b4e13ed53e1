package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobportal/internal/adapter/repository"
	"jobportal/internal/domain"
)

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Company  string `json:"company"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResp struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return errJSON(c, fiber.StatusBadRequest, "name, email and password are required")
	}
	if req.Role != domain.RoleCandidate && req.Role != domain.RoleRecruiter {
		return errJSON(c, fiber.StatusBadRequest, "Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
		Location:     req.Location,
		Company:      req.Company,
		CreatedAt:    time.Now(),
	}
	if err := h.users.Create(c.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return errJSON(c, fiber.StatusBadRequest, "User already exists")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := h.issueToken(user)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	return c.JSON(authResp{Token: token, User: user})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusBadRequest, "User not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	token, err := h.issueToken(user)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	return c.JSON(authResp{Token: token, User: user})
}
