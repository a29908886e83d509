package userController

import (
	"log"

	"steakz/config"
	"steakz/database"
	"steakz/middleware"
	"steakz/models"
	"steakz/policy"
	userValidator "steakz/validators/user"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func actorFromLocals(c *fiber.Ctx) (policy.Actor, bool) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return policy.Actor{}, false
	}
	role, _ := c.Locals("role").(string)
	return policy.Actor{ID: userId, Role: role}, true
}

// List returns a paginated user listing. USER-role actors only see other
// USER accounts.
func List(c *fiber.Ctx) error {
	actor, ok := actorFromLocals(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.User{})
	if actor.Role == models.RoleUser {
		query = query.Where("role = ?", models.RoleUser)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	var users []models.User
	if err := query.
		Preload("CreatedBy").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// Get returns one user, subject to the view policy.
func Get(c *fiber.Ctx) error {
	actor, ok := actorFromLocals(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var target models.User
	if err := database.Database.Db.Preload("CreatedBy").First(&target, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if denial := policy.CanViewUser(actor.Role, target.Role); denial != nil {
		return middleware.JsonResponse(c, denial.Status, false, denial.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User details.", target)
}

// AdminCreate creates a user account on behalf of an admin, recording the
// creator reference.
func AdminCreate(c *fiber.Ctx) error {
	actor, ok := actorFromLocals(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateUser").(*userValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	role, denial := policy.ValidateNewRole(reqData.Role)
	if denial != nil {
		return middleware.JsonResponse(c, denial.Status, false, denial.Message, nil)
	}

	db := database.Database.Db

	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Username already exists!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	creatorID := actor.ID
	newUser := models.User{
		Username:    reqData.Username,
		Password:    string(hashedPassword),
		Role:        role,
		CreatedByID: &creatorID,
	}
	if reqData.Email != "" {
		email := reqData.Email
		newUser.Email = &email
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", newUser)
}

// AdminUpdate updates username/email/password on a user account, subject to
// the admin-protection rule.
func AdminUpdate(c *fiber.Ctx) error {
	actor, ok := actorFromLocals(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateUser").(*userValidator.UpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var target models.User
	if err := db.First(&target, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if denial := policy.CanUpdateUser(actor, target); denial != nil {
		return middleware.JsonResponse(c, denial.Status, false, denial.Message, nil)
	}

	updates := make(map[string]interface{})

	if reqData.Username != "" {
		// Username must stay unique, excluding the target itself.
		var existing models.User
		if err := db.Where("username = ? AND id <> ?", reqData.Username, target.ID).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Username already exists!", nil)
		}
		updates["username"] = reqData.Username
	}

	if reqData.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
		}
		updates["password"] = string(hashedPassword)
	}

	if reqData.Email != "" {
		// Same uniqueness treatment as username.
		var existing models.User
		if err := db.Where("email = ? AND id <> ?", reqData.Email, target.ID).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email already in use!", nil)
		}
		updates["email"] = reqData.Email
	}

	if err := db.Model(&target).Updates(updates).Error; err != nil {
		log.Printf("Error updating user %d: %v", target.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", target)
}

// AdminChangeRole sets a user's role, subject to the self-change and
// admin-protection rules.
func AdminChangeRole(c *fiber.Ctx) error {
	actor, ok := actorFromLocals(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChangeRole").(*userValidator.ChangeRoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var target models.User
	if err := db.First(&target, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if denial := policy.CanChangeRole(actor, target, reqData.Role); denial != nil {
		return middleware.JsonResponse(c, denial.Status, false, denial.Message, nil)
	}

	if err := db.Model(&target).Update("role", reqData.Role).Error; err != nil {
		log.Printf("Error changing role for user %d: %v", target.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated to "+reqData.Role+".", target)
}

// AdminDelete removes a user account together with its reservations and
// their orders.
func AdminDelete(c *fiber.Ctx) error {
	actor, ok := actorFromLocals(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var target models.User
	if err := db.First(&target, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if denial := policy.CanDeleteUser(actor, target); denial != nil {
		return middleware.JsonResponse(c, denial.Status, false, denial.Message, nil)
	}

	// Deleting an account cascades to its reservations and their orders.
	// Accounts the target created are kept; their creator link is cleared.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("reservation_id IN (?)", tx.Model(&models.Reservation{}).Select("id").Where("user_id = ?", target.ID)).
			Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", target.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("created_by_id = ?", target.ID).Update("created_by_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&target).Error
	})
	if err != nil {
		log.Printf("Error deleting user %d: %v", target.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User "+target.Username+" and all associated data deleted successfully.", nil)
}
