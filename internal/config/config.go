// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GIN_MODE: Modo do gin: debug, release ou test (default: release)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
//   - TRACING_SAMPLE_RATIO: Fração das requisições amostradas, entre 0 e 1 (default: 1)
//
// ## Extração de chamados GLPI
//   - EXTRACAO_MAX_TEXTO_BYTES: Tamanho máximo do texto colado (default: 65536)
//   - EXTRACAO_CACHE_TTL_MINUTES: TTL do cache de extrações em minutos (default: 30)
//   - EXTRACAO_CACHE_MAX_SIZE: Tamanho máximo do cache de extrações (default: 500)
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	GinMode    string

	Tracing  TracingConfig
	Extracao ExtracaoConfig
}

// TracingConfig contém a configuração da exportação OpenTelemetry
type TracingConfig struct {
	Enabled  bool
	Endpoint string

	// Fração das requisições amostradas (0 < ratio <= 1)
	SampleRatio float64
}

// ExtracaoConfig contém a configuração da extração de chamados GLPI
type ExtracaoConfig struct {
	// Tamanho máximo do texto aceito, em bytes (default 65536)
	MaxTextoBytes int

	// TTL do cache de extrações em minutos (default 30)
	CacheTTLMinutes int

	// Tamanho máximo do cache de extrações (default 500)
	CacheMaxSize int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),

		Tracing: TracingConfig{
			Enabled:     getEnv("TRACING_ENABLED", "false") == "true",
			Endpoint:    getEnv("TRACING_ENDPOINT", "localhost:4317"),
			SampleRatio: getEnvFloat("TRACING_SAMPLE_RATIO", 1),
		},

		Extracao: ExtracaoConfig{
			MaxTextoBytes:   getEnvInt("EXTRACAO_MAX_TEXTO_BYTES", 65536),
			CacheTTLMinutes: getEnvInt("EXTRACAO_CACHE_TTL_MINUTES", 30),
			CacheMaxSize:    getEnvInt("EXTRACAO_CACHE_MAX_SIZE", 500),
		},
	}

	if cfg.Extracao.MaxTextoBytes <= 0 {
		log.Printf("[config] EXTRACAO_MAX_TEXTO_BYTES inválido (%d), usando 65536", cfg.Extracao.MaxTextoBytes)
		cfg.Extracao.MaxTextoBytes = 65536
	}

	if cfg.Tracing.SampleRatio <= 0 || cfg.Tracing.SampleRatio > 1 {
		log.Printf("[config] TRACING_SAMPLE_RATIO fora de (0, 1] (%g), usando 1", cfg.Tracing.SampleRatio)
		cfg.Tracing.SampleRatio = 1
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("[config] valor inválido para %s: %q, usando %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
		log.Printf("[config] valor inválido para %s: %q, usando %g", key, value, defaultValue)
	}
	return defaultValue
}
