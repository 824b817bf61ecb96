// internal/config/models.go
// Package config provides configuration loading, validation, and data models.
package config

// Theme holds the typography settings shared by every dialog.
type Theme struct {
	// FontFamily is the preferred font stack, first entry wins where fonts are selectable
	FontFamily string `validate:"required"`
	// FontSize is the base font size in points
	FontSize int `validate:"min=8,max=32"`
	// FontWeightLight is used for hints and placeholders
	FontWeightLight int `validate:"min=100,max=900"`
	// FontWeightRegular is used for body text
	FontWeightRegular int `validate:"min=100,max=900"`
	// FontWeightMedium is used for titles and labels
	FontWeightMedium int `validate:"min=100,max=900"`
	// Form names the terminal form palette (charm, dracula, base16, catppuccin, base)
	Form string `validate:"oneof=charm dracula base16 catppuccin base"`
}

// DefaultTheme mirrors the web frontend's typography.
func DefaultTheme() Theme {
	return Theme{
		FontFamily:        `"Nunito", "ui-sans-serif", "system-ui", sans-serif`,
		FontSize:          14,
		FontWeightLight:   300,
		FontWeightRegular: 400,
		FontWeightMedium:  500,
		Form:              "charm",
	}
}

// DevServer holds settings for the local development backend.
type DevServer struct {
	Host        string `validate:"required"`
	Port        int    `validate:"required,min=1,max=65535"`
	RateLimit   int    `validate:"min=1"`
	CORSOrigins []string
}
