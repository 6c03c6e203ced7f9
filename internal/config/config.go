package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is everything the bridge needs from the environment, parsed once at
// startup and passed by injection. Core logic never reads env directly.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Recipient of the initial story prompt and the RCS agent that sends it.
	ToNumber    string `env:"TO_NUMBER,required,notEmpty"`
	RCSSenderID string `env:"RCS_SENDER_ID,required,notEmpty"`

	// Generation backend.
	OpenAIAPIKey string `env:"OPENAI_API_KEY,required,notEmpty"`
	OpenAIModel  string `env:"OPENAI_MODEL"`

	// Vonage credentials. APIKey is matched against the api_key claim of
	// inbound webhook JWTs; SignatureSecret verifies them. ApplicationID and
	// the private key sign outbound Messages API tokens.
	VonageAPIKey          string `env:"VONAGE_API_KEY,required,notEmpty"`
	VonageSignatureSecret string `env:"VONAGE_API_SIGNATURE_SECRET,required,notEmpty"`
	VonageApplicationID   string `env:"VONAGE_APPLICATION_ID,required,notEmpty"`
	VonagePrivateKeyPath  string `env:"VONAGE_PRIVATE_KEY_PATH,required,notEmpty"`
	VonageAPIURL          string `env:"VONAGE_API_URL" envDefault:"https://api.nexmo.com"`

	// Optional delivery-receipt sink. Empty = receipts are not recorded.
	DatabaseURL string `env:"DATABASE_URL"`
}

// Load parses the process environment. A missing required variable is a
// startup failure, not something to limp past.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
