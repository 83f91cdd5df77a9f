package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/greenwood-edu/attendance/internal/flagx"
	"github.com/greenwood-edu/attendance/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath       string         `json:"database_path"`
	MailEndpoint       string         `json:"mail_endpoint"`
	MailServiceID      string         `json:"mail_service_id"`
	MailPublicKey      string         `json:"mail_public_key"`
	MailVerifyTemplate string         `json:"mail_verify_template"`
	MailAlertTemplate  string         `json:"mail_alert_template"`
	MailFromName       string         `json:"mail_from_name"`
	MailTimeout        timex.Duration `json:"mail_timeout"`
	LoginDelay         timex.Duration `json:"login_delay"`
	ResendCooldown     timex.Duration `json:"resend_cooldown"`
	AlertThreshold     int            `json:"alert_threshold"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags via flagx.JsonConfigFlags(); when no path
// is given the function is a no-op. Empty JSON fields leave the current
// value untouched so callers can override selectively.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.MailEndpoint != "" {
		cfg.MailEndpoint = jc.MailEndpoint
	}
	if jc.MailServiceID != "" {
		cfg.MailServiceID = jc.MailServiceID
	}
	if jc.MailPublicKey != "" {
		cfg.MailPublicKey = jc.MailPublicKey
	}
	if jc.MailVerifyTemplate != "" {
		cfg.MailVerifyTemplate = jc.MailVerifyTemplate
	}
	if jc.MailAlertTemplate != "" {
		cfg.MailAlertTemplate = jc.MailAlertTemplate
	}
	if jc.MailFromName != "" {
		cfg.MailFromName = jc.MailFromName
	}
	if jc.MailTimeout.Duration != 0 {
		cfg.MailTimeout = time.Duration(jc.MailTimeout.Duration)
	}
	if jc.LoginDelay.Duration != 0 {
		cfg.LoginDelay = time.Duration(jc.LoginDelay.Duration)
	}
	if jc.ResendCooldown.Duration != 0 {
		cfg.ResendCooldown = time.Duration(jc.ResendCooldown.Duration)
	}
	if jc.AlertThreshold != 0 {
		cfg.AlertThreshold = jc.AlertThreshold
	}
}
