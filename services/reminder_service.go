// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"fashiontally-backend/config"
	"fashiontally-backend/metrics"
	"fashiontally-backend/models"
	"fashiontally-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	log    *zap.Logger
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
		log: config.Log,
	}
}

// StartScheduler runs the daily reminder pass at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	s.log.Info("reminder scheduler started")
}

// SendDailyReminders walks every main-admin tenant and reminds clients
// with an appointment tomorrow. Team-member accounts are skipped; their
// appointments live under the inviting admin's tenant key.
func (s *ReminderService) SendDailyReminders() {
	s.log.Info("starting daily reminder processing")

	var tenants []models.User
	if err := s.db.Find(&tenants, "is_active = ? AND invited_by = ''", true).Error; err != nil {
		s.log.Error("failed to fetch tenants", zap.Error(err))
		return
	}

	for _, tenant := range tenants {
		s.ProcessTenantReminders(tenant.Email)
	}

	s.log.Info("daily reminder processing completed")
}

func (s *ReminderService) ProcessTenantReminders(tenantKey string) {
	start, end := utils.TomorrowRange(time.Now())

	var appointments []models.Appointment
	err := s.db.Where(
		"user_email = ? AND status = ? AND date >= ? AND date < ?",
		tenantKey, "Scheduled", start, end,
	).Find(&appointments).Error
	if err != nil {
		s.log.Error("failed to get appointments",
			zap.String("tenant", tenantKey), zap.Error(err))
		return
	}

	for _, appointment := range appointments {
		s.sendReminder(tenantKey, appointment)
	}
}

func (s *ReminderService) sendReminder(tenantKey string, appointment models.Appointment) {
	if appointment.ClientPhone == "" {
		return
	}

	message := fmt.Sprintf(
		"Hi %s, a reminder of your appointment tomorrow at %s",
		appointment.ClientName, appointment.Time,
	)
	if appointment.Purpose != "" {
		message += " for " + appointment.Purpose
	}
	if appointment.Location != "" {
		message += " at " + appointment.Location
	}
	message += "."

	// WhatsApp for E.164 numbers, SMS otherwise
	channel := "sms"
	to := appointment.ClientPhone
	if strings.HasPrefix(appointment.ClientPhone, "+") {
		to = "whatsapp:" + appointment.ClientPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		s.log.Warn("failed to send reminder",
			zap.String("phone", appointment.ClientPhone), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		s.log.Info("reminder sent",
			zap.String("phone", appointment.ClientPhone), zap.String("sid", *resp.Sid))
	} else {
		s.log.Info("reminder sent without SID",
			zap.String("phone", appointment.ClientPhone))
	}

	metrics.RemindersSentCounter.WithLabelValues(status).Inc()

	reminderLog := models.ReminderLog{
		UserEmail:     tenantKey,
		AppointmentID: appointment.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		s.log.Error("failed to log reminder",
			zap.String("appointment", appointment.ID.String()), zap.Error(err))
	}
}
