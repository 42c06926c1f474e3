package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider is a configuration provider reading dotenv files with
// [godotenv].
type GodotenvProvider struct{}

// Read reads the given dotenv files into a key-value map.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}
