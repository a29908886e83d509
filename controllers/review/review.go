package reviewController

import (
	"log"

	"steakz/database"
	"steakz/middleware"
	"steakz/models"
	reviewValidator "steakz/validators/review"

	"github.com/gofiber/fiber/v2"
)

// ListApproved returns approved reviews, newest first. Public.
func ListApproved(c *fiber.Ctx) error {
	var reviews []models.Comment
	if err := database.Database.Db.
		Where("approved = ?", true).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews.", reviews)
}

// Create submits a review. New reviews are held until an admin approves them.
func Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReview").(*reviewValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review := models.Comment{
		Content:  reqData.Content,
		UserName: reqData.UserName,
		Stars:    reqData.Stars,
	}

	if err := database.Database.Db.Create(&review).Error; err != nil {
		log.Printf("Error saving review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted. Pending approval.", review)
}

// ListPending returns reviews awaiting moderation. Admin only.
func ListPending(c *fiber.Ctx) error {
	var reviews []models.Comment
	if err := database.Database.Db.
		Where("approved = ?", false).
		Order("created_at ASC").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not fetch pending reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending reviews.", reviews)
}

// Approve publishes a review. Approval is one-way.
func Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	db := database.Database.Db

	var review models.Comment
	if err := db.First(&review, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := db.Model(&review).Update("approved", true).Error; err != nil {
		log.Printf("Error approving review %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review approved.", review)
}

// Delete removes a review.
func Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	db := database.Database.Db

	var review models.Comment
	if err := db.First(&review, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := db.Unscoped().Delete(&review).Error; err != nil {
		log.Printf("Error deleting review %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted.", nil)
}
