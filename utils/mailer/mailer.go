package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/abdul-nishar/Entertainment-API/config"

	gomail "github.com/wneessen/go-mail"
)

var (
	//go:embed templates/password_reset.html
	emailTemplates embed.FS

	passwordResetTemplate = template.Must(template.New("password_reset.html").ParseFS(emailTemplates, "templates/password_reset.html"))
)

type Client struct {
	cfg config.EmailConfig
}

func NewClient(cfg config.EmailConfig) *Client {
	return &Client{cfg: cfg}
}

// SendPasswordResetEmail delivers the one-time reset link. The link carries
// the plaintext token; only its digest exists server-side.
func (c *Client) SendPasswordResetEmail(toEmail, resetLink string) error {
	if c.cfg.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	from := c.cfg.FromAddress
	if from == "" {
		from = c.cfg.Username
	}
	if from == "" {
		return fmt.Errorf("smtp from address is not configured")
	}

	body := bytes.Buffer{}
	data := struct {
		ResetLink string
	}{ResetLink: resetLink}

	if err := passwordResetTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render password reset template: %w", err)
	}

	msg := gomail.NewMsg()
	if c.cfg.FromName != "" {
		if err := msg.FromFormat(c.cfg.FromName, from); err != nil {
			return fmt.Errorf("set from address: %w", err)
		}
	} else {
		if err := msg.From(from); err != nil {
			return fmt.Errorf("set from address: %w", err)
		}
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject("Reset Password (valid for 10 minutes)")
	msg.SetBodyString(gomail.TypeTextHTML, body.String())

	opts := []gomail.Option{
		gomail.WithPort(c.cfg.Port),
	}
	if c.cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL(), gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if c.cfg.Username != "" && c.cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(c.cfg.Username),
			gomail.WithPassword(c.cfg.Password),
		)
	}

	client, err := gomail.NewClient(c.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send password reset email: %w", err)
	}
	return nil
}
