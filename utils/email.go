package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds the booking confirmation template.
type BookingConfirmationData struct {
	BookingCode string
	ClassName   string
	TeacherName string
	Date        string
	StartTime   string
	MemberName  string
	DetailLink  string
}

// SendBookingConfirmationEmail renders and sends the confirmation mail with
// the check-in QR attached. Runs async so the booking response is not
// delayed by SMTP.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData, qrPNG []byte) {
	go func() {
		tmplPath := "templates/booking_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			Logger.Error().Err(err).Msg("load booking confirmation template")
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			Logger.Error().Err(err).Msg("render booking confirmation template")
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmed #"+data.BookingCode)
		m.SetBody("text/html", body.String())
		if len(qrPNG) > 0 {
			m.Embed("checkin-qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrPNG)
				return err
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			Logger.Error().Err(err).Str("to", to).Msg("send booking confirmation")
		}
	}()
}

// SendPasswordResetEmail sends the plain-text reset link mail.
func SendPasswordResetEmail(to, resetLink string) error {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Reset your password"
	e.Text = []byte(fmt.Sprintf("Follow this link to reset your password: %s\nThe link expires in 30 minutes.", resetLink))

	addr := host + ":" + portStr
	return e.Send(addr, smtp.PlainAuth("", username, password, host))
}
