package config

import "time"

// Config holds runtime settings for the attendance CLI.
//
// Fields:
//   - DatabasePath: path to the local sqlite database file.
//   - Mail*: settings for the EmailJS-compatible mail endpoint.
//   - LoginDelay: simulated authentication latency shown to the user.
//   - ResendCooldown: how long the resend action stays disabled after a send.
//   - AlertThreshold: attendance percentage below which alert emails go out.
//
// Units: durations are time.Duration values (e.g., 10*time.Second).
type Config struct {
	DatabasePath string

	MailEndpoint       string
	MailServiceID      string
	MailPublicKey      string
	MailVerifyTemplate string
	MailAlertTemplate  string
	MailFromName       string
	MailTimeout        time.Duration

	LoginDelay     time.Duration
	ResendCooldown time.Duration
	AlertThreshold int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "attendance.db"

	c.MailEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
	c.MailServiceID = "service_xxxxxxx"
	c.MailPublicKey = ""
	c.MailVerifyTemplate = "template_verify"
	c.MailAlertTemplate = "template_alert"
	c.MailFromName = "Greenwood Institute of Technology"
	c.MailTimeout = 10 * time.Second

	c.LoginDelay = 1200 * time.Millisecond
	c.ResendCooldown = 60 * time.Second
	c.AlertThreshold = 75
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
