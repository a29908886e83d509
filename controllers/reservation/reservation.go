package reservationController

import (
	"log"
	"time"

	"steakz/config"
	"steakz/database"
	"steakz/middleware"
	"steakz/models"
	"steakz/reports"
	"steakz/utils"
	reservationValidator "steakz/validators/reservation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// parseDate accepts a calendar day as "2006-01-02" or a full RFC 3339
// timestamp, normalized to midnight in the system's local calendar.
func parseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
		parsed = parsed.Local()
	}
	year, month, day := parsed.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), nil
}

// dayRange returns the half-open interval [day 00:00, day+1 00:00).
func dayRange(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

// AvailableSlots returns the subset of the slot universe not present in
// booked, preserving the universe's declared order.
func AvailableSlots(universe, booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	available := make([]string, 0, len(universe))
	for _, t := range universe {
		if !taken[t] {
			available = append(available, t)
		}
	}
	return available
}

// List returns all reservations with their orders.
func List(c *fiber.Ctx) error {
	var reservations []models.Reservation
	if err := database.Database.Db.
		Preload("Orders").
		Preload("User").
		Find(&reservations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reservations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reservations.", reservations)
}

// Slots returns the bookable times remaining for a date.
func Slots(c *fiber.Ctx) error {
	dateParam := c.Query("date")
	if dateParam == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Date required!", nil)
	}

	day, err := parseDate(dateParam)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date!", nil)
	}
	start, end := dayRange(day)

	var booked []string
	if err := database.Database.Db.
		Model(&models.Reservation{}).
		Where("date >= ? AND date < ?", start, end).
		Pluck("time", &booked).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error checking availability!", nil)
	}

	available := AvailableSlots(config.AppConfig.ReservationSlots, booked)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Available times.", available)
}

// createBooking writes the reservation and its order line items as a single
// transaction. A partial write (reservation without its orders) must never
// be observable.
func createBooking(c *fiber.Ctx, userID uint, reqData *reservationValidator.BookRequest) error {
	day, err := parseDate(reqData.Date)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date!", nil)
	}

	db := database.Database.Db

	var owner models.User
	if err := db.First(&owner, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reservation user not found!", nil)
	}

	reservation := models.Reservation{
		UserID: userID,
		Name:   reqData.Name,
		Date:   day,
		Time:   reqData.Time,
		Status: models.ReservationBooked,
	}
	for _, o := range reqData.Orders {
		reservation.Orders = append(reservation.Orders, models.Order{
			MenuItem: o.Item,
			Price:    o.Price,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&reservation).Error
	})
	if err != nil {
		log.Printf("Error creating reservation: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create reservation!", nil)
	}

	go utils.NotifyReservationWebhook(reservation)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reservation created.", reservation)
}

// Book creates a reservation for any user (staff endpoint).
func Book(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBooking").(*reservationValidator.BookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	return createBooking(c, reqData.UserID, reqData)
}

// BookSelf creates a reservation owned by the authenticated user.
func BookSelf(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBooking").(*reservationValidator.BookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	return createBooking(c, userId, reqData)
}

// Mine returns the authenticated user's reservations, oldest date first.
func Mine(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var reservations []models.Reservation
	if err := database.Database.Db.
		Preload("Orders").
		Where("user_id = ?", userId).
		Order("date ASC").
		Find(&reservations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user reservations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your reservations.", reservations)
}

// Today returns reservations whose date falls within today's half-open
// interval [00:00, next day 00:00).
func Today(c *fiber.Ctx) error {
	start, end := dayRange(time.Now())

	var reservations []models.Reservation
	if err := database.Database.Db.
		Preload("Orders").
		Preload("User").
		Where("date >= ? AND date < ?", start, end).
		Find(&reservations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch today's reservations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Today's reservations.", reservations)
}

// Unpaid returns reservations awaiting payment, for the mark-paid screen.
func Unpaid(c *fiber.Ctx) error {
	var reservations []models.Reservation
	if err := database.Database.Db.
		Preload("Orders").
		Preload("User").
		Where("is_paid = ?", false).
		Find(&reservations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not fetch unpaid reservations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unpaid reservations.", reservations)
}

// MarkPaid sets isPaid and status. Re-invoking on an already-paid
// reservation is a no-op success.
func MarkPaid(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid reservation id!", nil)
	}

	db := database.Database.Db

	var reservation models.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reservation not found!", nil)
	}

	if err := db.Model(&reservation).Updates(map[string]interface{}{
		"is_paid": true,
		"status":  models.ReservationPaid,
	}).Error; err != nil {
		log.Printf("Error marking reservation %d paid: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark as paid!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reservation marked as paid.", reservation)
}

// Serve sets the served flag, independent of payment state. Idempotent.
func Serve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid reservation id!", nil)
	}

	db := database.Database.Db

	var reservation models.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reservation not found!", nil)
	}

	if err := db.Model(&reservation).Update("served", true).Error; err != nil {
		log.Printf("Error marking reservation %d served: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update reservation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reservation marked as served.", reservation)
}

// Report reduces today's reservations into the daily report figures.
func Report(c *fiber.Ctx) error {
	start, end := dayRange(time.Now())

	var reservations []models.Reservation
	if err := database.Database.Db.
		Preload("Orders").
		Where("date >= ? AND date < ?", start, end).
		Find(&reservations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate report!", nil)
	}

	summary := reports.Summarize(reservations)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily report.", summary)
}
