package notification

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
	"github.com/Team-lead001/silver-walks-backend/service/observability"
	"github.com/google/uuid"
	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// template holds the rendered surface of one notification event. Placeholders
// of the form {key} are filled from the dispatch data.
type template struct {
	Title string
	Body  string
}

var templates = map[string]template{
	"walk_requested": {
		Title: "New walk request",
		Body:  "{elderly_name} requested a walk on {date} at {time}.",
	},
	"walk_confirmed": {
		Title: "Walk confirmed",
		Body:  "Your walk on {date} at {time} has been confirmed.",
	},
	"walk_rejected": {
		Title: "Walk request declined",
		Body:  "Your walk request for {date} at {time} was declined.",
	},
	"walk_cancelled": {
		Title: "Walk cancelled",
		Body:  "The walk on {date} at {time} has been cancelled.",
	},
	"walk_completed": {
		Title: "Walk completed",
		Body:  "Your walk on {date} has been completed. You can now leave feedback.",
	},
	"walk_reminder": {
		Title: "Upcoming walk",
		Body:  "Your walk starts at {time}. Your companion is {nurse_name}.",
	},
}

// MailConfig carries the SMTP settings for the optional email channel. An
// empty Host disables email entirely.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// MailConfigFromEnv reads SMTP settings from the environment.
func MailConfigFromEnv() MailConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return MailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// Notifier delivers templated events to a user's registered devices over Expo
// push, with an optional email copy. Delivery is best effort: every failure
// is logged and recorded in history, never returned to the caller.
type Notifier struct {
	db         *gorm.DB
	expoClient *expo.PushClient
	mail       MailConfig
}

func NewNotifier(db *gorm.DB, mail MailConfig) *Notifier {
	return &Notifier{
		db:         db,
		expoClient: expo.NewPushClient(nil),
		mail:       mail,
	}
}

// Dispatch renders the template, pushes it to the user's devices and records
// a history row. Unknown templates are dropped with a log line.
func (n *Notifier) Dispatch(userID uuid.UUID, templateName string, data map[string]string) {
	tmpl, ok := templates[templateName]
	if !ok {
		log.Printf("Unknown notification template %q for user %s", templateName, userID)
		return
	}
	title := render(tmpl.Title, data)
	body := render(tmpl.Body, data)

	status := "sent"
	if err := n.push(userID, title, body, data); err != nil {
		log.Printf("Error pushing notification %q to user %s: %v", templateName, userID, err)
		observability.NotificationFailuresTotal.Inc()
		status = "failed"
	}

	if err := n.email(userID, title, body); err != nil {
		log.Printf("Error emailing notification %q to user %s: %v", templateName, userID, err)
		observability.NotificationFailuresTotal.Inc()
	}

	dataJSON, _ := json.Marshal(data)
	history := models.NotificationHistory{
		UserID:   userID,
		Template: templateName,
		Title:    title,
		Body:     body,
		Data:     string(dataJSON),
		Status:   status,
		SentAt:   time.Now(),
	}
	if err := n.db.Create(&history).Error; err != nil {
		log.Printf("Error creating notification history: %v", err)
	}
}

// render substitutes {key} placeholders with dispatch data.
func render(s string, data map[string]string) string {
	for key, value := range data {
		s = strings.ReplaceAll(s, "{"+key+"}", value)
	}
	return s
}

func (n *Notifier) push(userID uuid.UUID, title, body string, data map[string]string) error {
	var devices []models.Device
	if err := n.db.Where("user_id = ?", userID).Find(&devices).Error; err != nil {
		return err
	}
	if len(devices) == 0 {
		return nil
	}

	var validTokens []expo.ExponentPushToken
	var invalidTokens []string
	for _, device := range devices {
		pushToken, err := expo.NewExponentPushToken(device.Token)
		if err != nil {
			log.Printf("Invalid push token format %s: %v", device.Token, err)
			invalidTokens = append(invalidTokens, device.Token)
			continue
		}
		validTokens = append(validTokens, pushToken)
	}
	n.cleanupInvalidTokens(invalidTokens)
	if len(validTokens) == 0 {
		return fmt.Errorf("no valid push tokens found")
	}

	pushMessage := &expo.PushMessage{
		To:       validTokens,
		Title:    title,
		Body:     body,
		Sound:    "default",
		Priority: expo.DefaultPriority,
		Data:     data,
	}
	response, err := n.expoClient.Publish(pushMessage)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %v", err)
	}
	if validationErr := response.ValidateResponse(); validationErr != nil {
		return fmt.Errorf("notification validation failed: %v", validationErr)
	}
	return nil
}

func (n *Notifier) email(userID uuid.UUID, title, body string) error {
	if n.mail.Host == "" {
		return nil
	}

	var user models.User
	if err := n.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	if user.Email == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.mail.From)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", title)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.mail.Host, n.mail.Port, n.mail.Username, n.mail.Password)
	return d.DialAndSend(m)
}

func (n *Notifier) cleanupInvalidTokens(tokens []string) {
	for _, token := range tokens {
		if err := n.db.Where("token = ?", token).Delete(&models.Device{}).Error; err != nil {
			log.Printf("Error cleaning up invalid token %s: %v", token, err)
		}
	}
}
