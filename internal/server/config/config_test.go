package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.StoreBackend != BackendRest {
		t.Fatalf("default backend should be rest, got %q", cfg.StoreBackend)
	}
	if cfg.ReadTimeout != 2*time.Second || cfg.WriteTimeout != 3*time.Second {
		t.Fatalf("unexpected default timeouts: %v / %v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.EndpointAddr == "" || cfg.SecretKey == "" {
		t.Fatal("defaults must populate addr and secret")
	}
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("STORE_BACKEND", BackendPostgres)
	t.Setenv("STORE_READ_TIMEOUT", "500ms")
	t.Setenv("AUDIO_MAX_BYTES", "1024")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.EndpointAddr != ":9090" {
		t.Errorf("ADDRESS override failed: %q", cfg.EndpointAddr)
	}
	if cfg.StoreBackend != BackendPostgres {
		t.Errorf("STORE_BACKEND override failed: %q", cfg.StoreBackend)
	}
	if cfg.ReadTimeout != 500*time.Millisecond {
		t.Errorf("STORE_READ_TIMEOUT override failed: %v", cfg.ReadTimeout)
	}
	if cfg.AudioMaxBytes != 1024 {
		t.Errorf("AUDIO_MAX_BYTES override failed: %d", cfg.AudioMaxBytes)
	}
}

func TestParseEnv_BadValuesKeepDefaults(t *testing.T) {
	t.Setenv("STORE_READ_TIMEOUT", "not-a-duration")
	t.Setenv("AUDIO_MAX_BYTES", "not-a-number")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.ReadTimeout != 2*time.Second {
		t.Errorf("bad duration should keep default, got %v", cfg.ReadTimeout)
	}
	if cfg.AudioMaxBytes != 10<<20 {
		t.Errorf("bad integer should keep default, got %d", cfg.AudioMaxBytes)
	}
}

func TestParseJson_Overlay(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "conf-*.json")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	content := `{
		"endpoint_addr": ":7070",
		"store_backend": "postgres",
		"store_read_timeout": "1s",
		"access_token_validity_duration": "30m"
	}`
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	f.Close()

	oldArgs := os.Args
	os.Args = []string{"server", "-c", f.Name()}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	if cfg.EndpointAddr != ":7070" {
		t.Errorf("endpoint_addr overlay failed: %q", cfg.EndpointAddr)
	}
	if cfg.StoreBackend != BackendPostgres {
		t.Errorf("store_backend overlay failed: %q", cfg.StoreBackend)
	}
	if cfg.ReadTimeout != time.Second {
		t.Errorf("store_read_timeout overlay failed: %v", cfg.ReadTimeout)
	}
	if cfg.AccessTokenValidityDuration != 30*time.Minute {
		t.Errorf("token validity overlay failed: %v", cfg.AccessTokenValidityDuration)
	}
	// untouched fields keep defaults
	if cfg.S3Bucket != "diary-audio" {
		t.Errorf("unset field must keep default, got %q", cfg.S3Bucket)
	}
}

func TestLoadConfig_EnvWinsOverFlags(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server", "-a", ":6060"}
	defer func() { os.Args = oldArgs }()

	t.Setenv("ADDRESS", ":9090")

	cfg := LoadConfig()

	if cfg.EndpointAddr != ":9090" {
		t.Errorf("environment must win over flags, got %q", cfg.EndpointAddr)
	}
}
