package config

import (
	"os"
	"strconv"
	"sync"
)

type EmailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// ResetURLBase is an optional frontend deep link for password reset
	// emails; when empty the API's own reset route is linked instead.
	ResetURLBase string
}

var (
	emailConfig EmailConfig
	emailOnce   sync.Once
)

// LoadEmailConfig reads the mail delivery configuration once.
func LoadEmailConfig() EmailConfig {
	emailOnce.Do(func() {
		LoadEnv()

		port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if err != nil || port <= 0 {
			port = 587
		}

		emailConfig = EmailConfig{
			Host:         os.Getenv("SMTP_HOST"),
			Port:         port,
			Username:     os.Getenv("SMTP_USERNAME"),
			Password:     os.Getenv("SMTP_PASSWORD"),
			FromAddress:  os.Getenv("SMTP_FROM"),
			FromName:     os.Getenv("SMTP_FROM_NAME"),
			ResetURLBase: os.Getenv("PASSWORD_RESET_URL"),
		}
	})

	return emailConfig
}

// ResetEmailConfigForTest clears the memoized config so tests can swap values.
func ResetEmailConfigForTest() {
	emailOnce = sync.Once{}
	emailConfig = EmailConfig{}
}
