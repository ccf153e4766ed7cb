package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnvFile(t *testing.T) {
	content := `# this is a comment

STOCKWATCH_TEST_PLAIN=plain
STOCKWATCH_TEST_QUOTED="quoted value"
STOCKWATCH_TEST_SINGLE='single'
`
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"STOCKWATCH_TEST_PLAIN",
		"STOCKWATCH_TEST_QUOTED",
		"STOCKWATCH_TEST_SINGLE",
	} {
		os.Unsetenv(key)
		defer os.Unsetenv(key)
	}

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"STOCKWATCH_TEST_PLAIN", "plain"},
		{"STOCKWATCH_TEST_QUOTED", "quoted value"},
		{"STOCKWATCH_TEST_SINGLE", "single"},
	}
	for _, tc := range tests {
		if got := os.Getenv(tc.key); got != tc.want {
			t.Errorf("%s = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.env")
	if err := LoadEnvFile(path); err != nil {
		t.Errorf("expected missing env file to be ignored, got %v", err)
	}
}

func TestLoadEnvFileSkipsCommentsAndBlanks(t *testing.T) {
	content := "# STOCKWATCH_TEST_COMMENTED=nope\n\n"
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("STOCKWATCH_TEST_COMMENTED")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}

	if _, exists := os.LookupEnv("STOCKWATCH_TEST_COMMENTED"); exists {
		t.Error("commented line must not set an environment variable")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("STOCKWATCH_TEST_STR", "value")
	if got := getEnv("STOCKWATCH_TEST_STR", "default"); got != "value" {
		t.Errorf("getEnv = %q, want %q", got, "value")
	}
	if got := getEnv("STOCKWATCH_TEST_MISSING", "default"); got != "default" {
		t.Errorf("getEnv = %q, want %q", got, "default")
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("STOCKWATCH_TEST_INT", "42")
	t.Setenv("STOCKWATCH_TEST_BAD_INT", "forty two")

	if got := getEnvAsInt("STOCKWATCH_TEST_INT", 1); got != 42 {
		t.Errorf("getEnvAsInt = %d, want 42", got)
	}
	if got := getEnvAsInt("STOCKWATCH_TEST_BAD_INT", 1); got != 1 {
		t.Errorf("getEnvAsInt = %d, want default 1", got)
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("STOCKWATCH_TEST_FLOAT", "12.5")
	if got := getEnvAsFloat("STOCKWATCH_TEST_FLOAT", 1); got != 12.5 {
		t.Errorf("getEnvAsFloat = %v, want 12.5", got)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("STOCKWATCH_TEST_DUR_SECONDS", "30")
	t.Setenv("STOCKWATCH_TEST_DUR_PARSED", "2m")

	if got := getEnvAsDuration("STOCKWATCH_TEST_DUR_SECONDS", time.Second); got != 30*time.Second {
		t.Errorf("getEnvAsDuration = %v, want 30s", got)
	}
	if got := getEnvAsDuration("STOCKWATCH_TEST_DUR_PARSED", time.Second); got != 2*time.Minute {
		t.Errorf("getEnvAsDuration = %v, want 2m", got)
	}
	if got := getEnvAsDuration("STOCKWATCH_TEST_DUR_MISSING", time.Second); got != time.Second {
		t.Errorf("getEnvAsDuration = %v, want default 1s", got)
	}
}

func TestGetEnvFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("token\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STOCKWATCH_TEST_SECRET_FILE", path)

	if got := getEnvFromFile("STOCKWATCH_TEST_SECRET_FILE", ""); got != "token" {
		t.Errorf("getEnvFromFile = %q, want %q", got, "token")
	}
	if got := getEnvFromFile("STOCKWATCH_TEST_SECRET_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnvFromFile = %q, want %q", got, "fallback")
	}
}
