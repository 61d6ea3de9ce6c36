package config

import (
	"os"
	"strconv"
)

type Config struct {
	Backend     string // portaudio or oto
	BufferSize  int    // frames per buffer
	MetricsAddr string // empty disables the metrics endpoint
	MeterWindow float64
}

func Load() *Config {
	return &Config{
		Backend:     getEnv("WAVER_BACKEND", "portaudio"),
		BufferSize:  getEnvInt("WAVER_BUFFER_SIZE", 1024),
		MetricsAddr: getEnv("WAVER_METRICS_ADDR", ""),
		MeterWindow: .5,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}
