package config

import (
	"testing"
	"time"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	got := load(env(nil))
	if got != Default() {
		t.Errorf("got %+v, want %+v", got, Default())
	}
	if got.Debug() {
		t.Error("debug should be off by default")
	}
	if got.JPEGQuality != 90 || got.OCRLanguage != "eng" {
		t.Errorf("unexpected defaults %+v", got)
	}
}

func TestLoad_Values(t *testing.T) {
	got := load(env(map[string]string{
		EnvLogLevel:      "DEBUG",
		EnvFetchTimeout:  "5s",
		EnvMaxFetchBytes: "1024",
		EnvJPEGQuality:   "75",
		EnvOCRLanguage:   "deu",
	}))
	want := Config{
		LogLevel:      "debug",
		FetchTimeout:  5 * time.Second,
		MaxFetchBytes: 1024,
		JPEGQuality:   75,
		OCRLanguage:   "deu",
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.Debug() {
		t.Error("debug should be on")
	}
}

func TestLoad_InvalidFallsBack(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvFetchTimeout, "soon"},
		{EnvFetchTimeout, "-3s"},
		{EnvMaxFetchBytes, "lots"},
		{EnvMaxFetchBytes, "0"},
		{EnvJPEGQuality, "0"},
		{EnvJPEGQuality, "101"},
		{EnvJPEGQuality, "high"},
	}
	for _, tt := range tests {
		if got := load(env(map[string]string{tt.key: tt.value})); got != Default() {
			t.Errorf("%s=%q: got %+v, want defaults", tt.key, tt.value, got)
		}
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(EnvJPEGQuality, "42")
	if got := Load().JPEGQuality; got != 42 {
		t.Errorf("JPEGQuality: got %d, want 42", got)
	}
}
