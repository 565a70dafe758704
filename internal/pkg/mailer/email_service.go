package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendLowStockAlert(toEmail, productName string, stock int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendLowStockAlert(toEmail, productName string, stock int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Low Stock Alert: %s", productName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Low Stock Alert</h2>
			<p>Product <strong>%s</strong> is running low on stock.</p>
			<p>Current stock: <strong>%d</strong></p>
			<p>Please restock soon.</p>
		</div>
	`, productName, stock)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send low stock alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Low stock alert sent to %s\n", toEmail)
	return nil
}
