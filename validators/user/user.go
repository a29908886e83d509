package userValidator

import (
	"strings"

	"steakz/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the validated admin user-creation payload.
type CreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UpdateRequest is the validated admin user-update payload. At least one of
// the fields must be supplied.
type UpdateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// ChangeRoleRequest is the validated role-change payload.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// AdminCreate validator middleware
func AdminCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Username = strings.TrimSpace(reqData.Username)
		if reqData.Username == "" {
			errors["username"] = "Username is required!"
		}
		if strings.TrimSpace(reqData.Password) == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateUser", reqData)
		return c.Next()
	}
}

// AdminUpdate validator middleware
func AdminUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Username = strings.TrimSpace(reqData.Username)
		if reqData.Username == "" && strings.TrimSpace(reqData.Password) == "" && strings.TrimSpace(reqData.Email) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No update data provided!", nil)
		}

		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}

// ChangeRole validator middleware
func ChangeRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangeRoleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Role == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Role is required!", nil)
		}

		c.Locals("validatedChangeRole", reqData)
		return c.Next()
	}
}
