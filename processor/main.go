package main

import (
	"fmt"
	"log"
	"time"

	"fiber-bizapp/config"
	"fiber-bizapp/database"
	"fiber-bizapp/models"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Standalone worker: polls for notifications that have not been emailed yet
// and sends them out, marking each as emailed. Undeliverable notifications
// (missing user, no email address) are marked too so they leave the queue
// instead of being re-fetched every poll.

// undeliverableReason reports why a notification can never be emailed.
// Empty means deliverable. Transient failures (SMTP errors) are not
// undeliverable and stay queued for the next poll.
func undeliverableReason(user *models.User, lookupErr error) string {
	if lookupErr != nil {
		return "user not found"
	}
	if user.Email == "" {
		return "user has no email address"
	}
	return ""
}

func markProcessed(db *gorm.DB, n models.Notification, sendError string) {
	now := time.Now()
	db.Model(&models.Notification{}).
		Where("id = ?", n.ID).
		Updates(map[string]interface{}{"emailed": true, "emailed_at": &now, "send_error": sendError})
}

func sendPendingNotifications(db *gorm.DB, dialer *gomail.Dialer) {
	var pending []models.Notification
	if err := db.Where("emailed = ?", false).
		Order("created_at asc").
		Limit(50).
		Find(&pending).Error; err != nil {
		log.Println("Failed to load pending notifications:", err)
		return
	}

	for _, n := range pending {
		var user models.User
		lookupErr := db.First(&user, n.UserID).Error
		if reason := undeliverableReason(&user, lookupErr); reason != "" {
			log.Println("Dropping notification", n.ID, ":", reason)
			markProcessed(db, n, reason)
			continue
		}

		m := gomail.NewMessage()
		m.SetHeader("From", config.SMTPSender)
		m.SetHeader("To", user.Email)
		m.SetHeader("Subject", n.Subject)
		m.SetBody("text/plain", n.Body)

		if err := dialer.DialAndSend(m); err != nil {
			log.Println("Failed to send notification email:", err)
			continue
		}

		markProcessed(db, n, "")

		fmt.Println("📧 Sent notification", n.ID, "to", user.Email)
	}
}

func main() {
	config.LoadConfig()

	db, err := database.OpenAppDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)

	for {
		sendPendingNotifications(db, dialer)
		time.Sleep(30 * time.Second)
	}
}
