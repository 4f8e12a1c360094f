package balldontlie

import "time"

const (
	providerName       = "balldontlie"
	defaultBaseURL     = "https://www.balldontlie.io/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	// Upper bound on how much of an error body ends up in an error message.
	maxErrorBody = 512
)
