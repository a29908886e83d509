package utils

import (
	"log"
	"time"

	"steakz/config"
	"steakz/models"

	"github.com/go-resty/resty/v2"
)

// NotifyReservationWebhook posts a new reservation to the configured
// webhook, if any. Best effort; failures are logged and never retried.
func NotifyReservationWebhook(reservation models.Reservation) {
	url := config.AppConfig.ReservationWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"reservationId": reservation.ID,
			"name":          reservation.Name,
			"date":          reservation.Date.Format("2006-01-02"),
			"time":          reservation.Time,
			"orderCount":    len(reservation.Orders),
		}).
		Post(url)
	if err != nil {
		log.Printf("Error notifying reservation webhook: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Reservation webhook rejected reservation %d: %s", reservation.ID, resp.Status())
	}
}
