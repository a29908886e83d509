package utils

import (
	"fmt"
	"log"

	"steakz/config"
	"steakz/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendContactEmail forwards a contact-form message to the restaurant inbox.
// Delivery is best effort: failures are logged, never surfaced to the caller.
func SendContactEmail(message models.ContactMessage) {
	cfg := config.AppConfig
	if cfg.SendGridAPIKey == "" || cfg.ContactEmail == "" {
		log.Printf("Contact email not configured. Message %s from %s logged only.", message.Reference, message.Email)
		return
	}

	from := mail.NewEmail("Steakz Contact Form", cfg.ContactEmail)
	to := mail.NewEmail("Steakz", cfg.ContactEmail)
	subject := "New contact message from " + message.Name

	plain := fmt.Sprintf("Reference: %s\nFrom: %s <%s>\n\n%s",
		message.Reference, message.Name, message.Email, message.Message)
	html := fmt.Sprintf(`
		<p><strong>Reference:</strong> %s</p>
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<p>%s</p>
	`, message.Reference, message.Name, message.Email, message.Message)

	client := sendgrid.NewSendClient(cfg.SendGridAPIKey)
	resp, err := client.Send(mail.NewSingleEmail(from, subject, to, plain, html))
	if err != nil {
		log.Printf("Error sending contact email %s: %v", message.Reference, err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("Contact email %s rejected: %d %s", message.Reference, resp.StatusCode, resp.Body)
		return
	}

	log.Printf("Contact email %s forwarded to %s", message.Reference, cfg.ContactEmail)
}
