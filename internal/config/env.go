package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "BALANCESCALE_"

// FromEnv overlays BALANCESCALE_* variables on cfg, reading a .env file
// in the working directory first if there is one.
func FromEnv(cfg *Config) *Config {
	godotenv.Load()

	cfg.Mode = getEnv("MODE", cfg.Mode)
	cfg.Integrator = getEnv("INTEGRATOR", cfg.Integrator)
	cfg.Classifier = getEnv("CLASSIFIER", cfg.Classifier)
	cfg.Mapping = getEnv("MAPPING", cfg.Mapping)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)

	cfg.Physics.ArmHalfLength = getEnvFloat("ARM", cfg.Physics.ArmHalfLength)
	cfg.Physics.Sensitivity = getEnvFloat("SENSITIVITY", cfg.Physics.Sensitivity)
	cfg.Physics.Damping = getEnvFloat("DAMPING", cfg.Physics.Damping)
	cfg.Physics.MaxAngle = getEnvFloat("MAX_ANGLE", cfg.Physics.MaxAngle)
	cfg.Physics.Restoring = getEnvFloat("RESTORING", cfg.Physics.Restoring)

	cfg.Seed = int64(getEnvInt("SEED", int(cfg.Seed)))
	cfg.Challenge = getEnvBool("CHALLENGE", cfg.Challenge)
	cfg.StartPaused = getEnvBool("START_PAUSED", cfg.StartPaused)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(envPrefix + key); ok {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(envPrefix + key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(envPrefix + key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
