package users

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stash-api/internal/api/response"
	"stash-api/internal/domain/users"
)

type UserRepository interface {
	Create(user *users.User) error
	FindByEmail(email string) (*users.User, error)
}

type Handler struct {
	users UserRepository
}

func NewHandler(userRepo UserRepository) *Handler {
	return &Handler{users: userRepo}
}

type registerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// Register handles POST /api/v1/users.
func (h *Handler) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Invalid request data")
		return
	}

	if !users.IsEmailValid(input.Email) {
		response.ValidationError(c, "Invalid email format")
		return
	}
	if !users.IsNameValid(input.Name) {
		response.ValidationError(c, "Name must be 1-50 characters and contain only allowed characters")
		return
	}
	if !users.IsPhoneValid(input.Phone) {
		response.ValidationError(c, "Invalid Japanese phone number format")
		return
	}
	if !users.IsCompanyValid(input.Company) {
		response.ValidationError(c, "Company must be 1-100 characters")
		return
	}

	existing, err := h.users.FindByEmail(input.Email)
	if err != nil {
		log.Println("failed to look up email:", err)
		response.InternalError(c, "Failed to create user")
		return
	}
	if existing != nil {
		response.Conflict(c, "Email is already registered")
		return
	}

	user := users.User{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   optionalString(input.Phone),
		Company: optionalString(input.Company),
	}

	if err := h.users.Create(&user); err != nil {
		// The unique index is the arbiter when two registrations race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Conflict(c, "Email is already registered")
			return
		}
		log.Println("failed to create user:", err)
		response.InternalError(c, "Failed to create user")
		return
	}

	response.Success(c, http.StatusCreated, user, "User registered successfully")
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
