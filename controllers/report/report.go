package reportController

import (
	"steakz/database"
	"steakz/middleware"
	"steakz/models"
	"steakz/reports"

	"github.com/gofiber/fiber/v2"
)

// Summary returns the all-time reservation count and revenue over paid
// reservations.
func Summary(c *fiber.Ctx) error {
	db := database.Database.Db

	var count int64
	if err := db.Model(&models.Reservation{}).Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not generate report!", nil)
	}

	var paid []models.Reservation
	if err := db.
		Preload("Orders").
		Where("is_paid = ?", true).
		Find(&paid).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not generate report!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report summary.", fiber.Map{
		"totalReservations": count,
		"revenue":           reports.Revenue(paid),
	})
}
