package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"

	"github.com/Jgauri24/happenix/internal/domain"
	"github.com/Jgauri24/happenix/internal/monitoring"
)

const (
	breakerThreshold = 3
	breakerCooldown  = time.Minute
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailNotifier sends booking emails over SMTP, best effort. Delivery
// failures are logged and absorbed; a run of failures opens the breaker and
// sends are skipped until the cooldown passes.
type EmailNotifier struct {
	dialer  *gomail.Dialer
	from    string
	breaker *breaker
	logger  logger.Logger
}

// NewEmailNotifier builds the notifier and verifies the SMTP connection
// once. An empty host disables email entirely; a failed verification only
// opens the breaker, so the service still starts.
func NewEmailNotifier(cfg Config, log logger.Logger) *EmailNotifier {
	n := &EmailNotifier{
		from:    cfg.From,
		breaker: newBreaker(breakerThreshold, breakerCooldown),
		logger:  log,
	}

	if cfg.Host == "" {
		log.Warn("smtp host is empty, email notifications disabled")
		return n
	}

	n.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	closer, err := n.dialer.Dial()
	if err != nil {
		log.Warn("smtp verification failed, email suspended until breaker cooldown",
			logger.String("host", cfg.Host),
			logger.String("error", err.Error()),
		)
		n.breaker.trip()
		return n
	}
	_ = closer.Close()

	log.Info("smtp connection verified", logger.String("host", cfg.Host))
	return n
}

func (n *EmailNotifier) SendBookingConfirmation(ctx context.Context, user *domain.User, event *domain.Event, ticketRef string) {
	subject := fmt.Sprintf("Booking Confirmed: %s", event.Title)
	body := fmt.Sprintf(
		"<h2>Booking Confirmed!</h2>"+
			"<p>Hi %s,</p>"+
			"<p>Your booking for <strong>%s</strong> has been confirmed.</p>"+
			"<p>Your QR ticket: %s</p>"+
			"<p>We'll send you a reminder before the event.</p>",
		user.Name, event.Title, ticketRef,
	)
	n.send(ctx, "confirmation", user.Email, subject, body)
}

func (n *EmailNotifier) SendEventUpdate(ctx context.Context, user *domain.User, event *domain.Event, message string) {
	subject := fmt.Sprintf("Update: %s", event.Title)
	body := fmt.Sprintf(
		"<h2>Event Update</h2>"+
			"<p>Hi %s,</p>"+
			"<p>Update for <strong>%s</strong>:</p>"+
			"<p>%s</p>",
		user.Name, event.Title, message,
	)
	n.send(ctx, "update", user.Email, subject, body)
}

func (n *EmailNotifier) SendEventReminder(ctx context.Context, user *domain.User, event *domain.Event) {
	subject := fmt.Sprintf("Reminder: %s is starting soon!", event.Title)
	body := fmt.Sprintf(
		"<h2>Event Reminder</h2>"+
			"<p>Hi %s,</p>"+
			"<p>Just a reminder that <strong>%s</strong> is starting soon!</p>"+
			"<p><strong>Date:</strong> %s</p>",
		user.Name, event.Title, event.EventDate.Format("02 Jan 2006 15:04 MST"),
	)
	n.send(ctx, "reminder", user.Email, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, kind, to, subject, body string) {
	if n.dialer == nil {
		n.logger.Debug("email skipped (smtp disabled)",
			logger.String("kind", kind),
			logger.String("subject", subject),
		)
		monitoring.NotificationsSent.WithLabelValues(kind, "skipped").Inc()
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)",
			logger.String("kind", kind),
			logger.String("to", to),
		)
		monitoring.NotificationsSent.WithLabelValues(kind, "skipped").Inc()
		return
	}

	if !n.breaker.allow() {
		n.logger.Warn("email skipped (breaker open)",
			logger.String("kind", kind),
			logger.String("to", to),
		)
		monitoring.NotificationsSent.WithLabelValues(kind, "skipped").Inc()
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.breaker.failure()
		monitoring.NotificationsSent.WithLabelValues(kind, "error").Inc()
		n.logger.Error("failed to send email",
			logger.String("kind", kind),
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
		return
	}

	n.breaker.success()
	monitoring.NotificationsSent.WithLabelValues(kind, "ok").Inc()
	n.logger.Info("email sent",
		logger.String("kind", kind),
		logger.String("to", to),
	)
}
