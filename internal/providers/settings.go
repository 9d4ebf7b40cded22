// Package providers holds the external collaborators of the aggregation
// core: the currency-rate and stock-quote HTTP clients and the user
// settings file that drives them.
package providers

import (
	"encoding/json"
	"fmt"
	"os"
)

// UserSettings lists the currencies and stock symbols the home page embeds.
type UserSettings struct {
	Currencies []string `json:"user_currencies"`
	Stocks     []string `json:"user_stocks"`
}

// LoadUserSettings reads the settings JSON at path.
func LoadUserSettings(path string) (UserSettings, error) {
	var s UserSettings
	f, err := os.Open(path)
	if err != nil {
		return s, fmt.Errorf("open user settings: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return s, fmt.Errorf("decode user settings %s: %w", path, err)
	}
	return s, nil
}
