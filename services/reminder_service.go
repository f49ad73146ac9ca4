// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends day-before reminders for confirmed reservations.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendUpcomingReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendUpcomingReminders messages every customer with a CONFIRMED
// reservation tomorrow and logs each delivery attempt.
func (s *ReminderService) SendUpcomingReminders() {
	log.Println("Starting reservation reminder processing...")

	dayStart := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var reservations []models.Reservation
	err := s.db.Preload("Customer").
		Where("status = ? AND date_time >= ? AND date_time < ?",
			models.StatusConfirmed, dayStart, dayEnd).
		Find(&reservations).Error
	if err != nil {
		log.Printf("Failed to fetch tomorrow's reservations: %v", err)
		return
	}

	for _, reservation := range reservations {
		s.sendReminder(reservation)
	}

	log.Println("Reservation reminder processing completed")
}

// reminderMessage formats the day-before reminder text for a reservation.
func reminderMessage(reservation models.Reservation) string {
	return fmt.Sprintf(
		"%s様 明日%sより「%s」のご予約を承っております。ご来店をお待ちしております。",
		reservation.Customer.Name,
		reservation.DateTime.Format("15:04"),
		reservation.Menu,
	)
}

func (s *ReminderService) sendReminder(reservation models.Reservation) {
	customer := reservation.Customer
	message := reminderMessage(reservation)

	// Stored numbers are domestic digits-and-hyphens, so every reminder
	// goes out over SMS.
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Phone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", customer.Phone)
	}

	reminderLog := models.ReminderLog{
		ReservationID: reservation.ID,
		CustomerID:    customer.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       "sms",
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
	}
}
