package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file into the process environment.
// ENV_PATH overrides defaultPath. A missing default file is not an error;
// a missing file named by ENV_PATH is.
func LoadDotEnv(defaultPath string) error {
	envPath, explicit := os.LookupEnv("ENV_PATH")
	if !explicit || envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
		explicit = false
	}

	if err := godotenv.Load(envPath); err != nil {
		if explicit {
			slog.Error("Failed to load environment file", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "path", envPath)
	}

	return nil
}
