package config

const (
	envBdlBaseURL = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"

	defaultBdlBaseURL = "https://www.balldontlie.io/api/v1"
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL string `yaml:"base_url"`
	// Left empty the request carries no Authorization header.
	APIKey string `yaml:"api_key"`
}

func loadBalldontlie(base BalldontlieConfig) BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL: envOrDefault(envBdlBaseURL, base.BaseURL),
		APIKey:  envOrDefault(envBdlAPIKey, base.APIKey),
	}
}
