package service

import (
	"context"
	"fmt"
	"time"

	"betak-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	adminInbox string
}

func NewEmailService(host string, port int, username, password, from, adminInbox string) EmailService {
	return &emailService{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		from:       from,
		adminInbox: adminInbox,
	}
}

func (s *emailService) SendRentalRequestReceived(ctx context.Context, email, name, propertyName string, start, end time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Rental request received - %s", propertyName))

	body := fmt.Sprintf("Hello %s,\n\nWe received your rental request for %s from %s to %s.\n\nAn administrator will review it shortly; you will be notified once it is approved or rejected.\n\nBest regards,\nThe Betak Team",
		name, propertyName, start.Format("2006-01-02"), end.Format("2006-01-02"))
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendRentalStatusUpdate(ctx context.Context, email, name, propertyName string, status domain.RentalStatus) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Rental status update - %s", propertyName))

	body := fmt.Sprintf("Hello %s,\n\nYour rental for %s is now: %s.\n\nBest regards,\nThe Betak Team", name, propertyName, status)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendCheckoutReminder(ctx context.Context, email, name, propertyName string, endDate time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Checkout reminder - %s", propertyName))

	body := fmt.Sprintf("Hello %s,\n\nYour rental at %s ends on %s. Please remember to upload your before and after pictures and the condition report when you check out.\n\nBest regards,\nThe Betak Team",
		name, propertyName, endDate.Format("2006-01-02"))
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendContactNotification(ctx context.Context, msg *domain.ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.adminInbox)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("Contact form: %s", msg.Subject))

	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}
