// Path: internal/config/constants.go
package config

import "time"

const (
	// Environments selecting the API endpoint
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// Backend endpoints
	DefaultDevAPIURL  = "http://localhost:5068/api/v1"
	DefaultProdAPIURL = "https://rcalms-backend.onrender.com/api/v1"

	DefaultRequestTimeout = 30 * time.Second

	// Development server defaults
	DefaultDevServerHost   = "127.0.0.1"
	DefaultDevServerPort   = 5068
	DefaultDevRateLimit    = 20
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)
