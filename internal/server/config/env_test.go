package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv_OverlaysPresentVariables(t *testing.T) {
	t.Setenv("ENDPOINT_ADDR", ":9999")
	t.Setenv("RESEND_API_KEY", "re_env_key")
	t.Setenv("EMAIL_RECIPIENTS", "one@example.com, two@example.com")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, "re_env_key", cfg.ResendAPIKey)
	assert.Equal(t, []string{"one@example.com", "two@example.com"}, cfg.EmailRecipients)
	// untouched vars keep their defaults
	assert.Equal(t, "caseintake", cfg.S3Bucket)
}

func Test_splitRecipients(t *testing.T) {
	assert.Equal(t, []string{"a@x", "b@x"}, splitRecipients("a@x,b@x"))
	assert.Equal(t, []string{"a@x"}, splitRecipients(" a@x , "))
	assert.Nil(t, splitRecipients(""))
}
