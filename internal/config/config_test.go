package config

import (
	"os"
	"testing"
)

// unsetEnv remove a variável durante o teste e restaura o valor original ao final
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if value, exists := os.LookupEnv(key); exists {
		t.Cleanup(func() { os.Setenv(key, value) })
	}
	os.Unsetenv(key)
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "GIN_MODE", "TRACING_ENABLED", "TRACING_ENDPOINT", "TRACING_SAMPLE_RATIO",
		"EXTRACAO_MAX_TEXTO_BYTES", "EXTRACAO_CACHE_TTL_MINUTES", "EXTRACAO_CACHE_MAX_SIZE",
	} {
		unsetEnv(t, key)
	}

	cfg := LoadConfig()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
	if cfg.Tracing.Enabled {
		t.Error("Tracing.Enabled deveria ser false")
	}
	if cfg.Tracing.Endpoint != "localhost:4317" {
		t.Errorf("Tracing.Endpoint = %q, want localhost:4317", cfg.Tracing.Endpoint)
	}
	if cfg.Tracing.SampleRatio != 1 {
		t.Errorf("Tracing.SampleRatio = %g, want 1", cfg.Tracing.SampleRatio)
	}
	if cfg.Extracao.MaxTextoBytes != 65536 {
		t.Errorf("MaxTextoBytes = %d, want 65536", cfg.Extracao.MaxTextoBytes)
	}
	if cfg.Extracao.CacheTTLMinutes != 30 {
		t.Errorf("CacheTTLMinutes = %d, want 30", cfg.Extracao.CacheTTLMinutes)
	}
	if cfg.Extracao.CacheMaxSize != 500 {
		t.Errorf("CacheMaxSize = %d, want 500", cfg.Extracao.CacheMaxSize)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_ENDPOINT", "otel:4317")
	t.Setenv("TRACING_SAMPLE_RATIO", "0.25")
	t.Setenv("EXTRACAO_MAX_TEXTO_BYTES", "1024")
	t.Setenv("EXTRACAO_CACHE_MAX_SIZE", "abc")

	cfg := LoadConfig()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if !cfg.Tracing.Enabled {
		t.Error("Tracing.Enabled deveria ser true")
	}
	if cfg.Tracing.Endpoint != "otel:4317" {
		t.Errorf("Tracing.Endpoint = %q, want otel:4317", cfg.Tracing.Endpoint)
	}
	if cfg.Tracing.SampleRatio != 0.25 {
		t.Errorf("Tracing.SampleRatio = %g, want 0.25", cfg.Tracing.SampleRatio)
	}
	if cfg.Extracao.MaxTextoBytes != 1024 {
		t.Errorf("MaxTextoBytes = %d, want 1024", cfg.Extracao.MaxTextoBytes)
	}
	if cfg.Extracao.CacheMaxSize != 500 {
		t.Errorf("CacheMaxSize com valor inválido = %d, want 500", cfg.Extracao.CacheMaxSize)
	}
}

func TestLoadConfig_MaxTextoInvalido(t *testing.T) {
	t.Setenv("EXTRACAO_MAX_TEXTO_BYTES", "0")

	cfg := LoadConfig()

	if cfg.Extracao.MaxTextoBytes != 65536 {
		t.Errorf("MaxTextoBytes = %d, want 65536", cfg.Extracao.MaxTextoBytes)
	}
}

func TestLoadConfig_SampleRatioInvalido(t *testing.T) {
	for _, valor := range []string{"0", "1.5", "-1", "metade"} {
		t.Run(valor, func(t *testing.T) {
			t.Setenv("TRACING_SAMPLE_RATIO", valor)

			cfg := LoadConfig()

			if cfg.Tracing.SampleRatio != 1 {
				t.Errorf("SampleRatio = %g, want 1", cfg.Tracing.SampleRatio)
			}
		})
	}
}
