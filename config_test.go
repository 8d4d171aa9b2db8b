package aoc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"AOC_INPUT_DIR", "AOC_INPUT_PATTERN", "AOC_DEBUG"} {
		t.Setenv(k, "")
	}
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, DefaultConfig())
	}
	src := cfg.Source()
	if src.Dir != "inputs" || src.Pattern != "day%02d.txt" {
		t.Errorf("Source() = %+v", src)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	configContent := `input_dir: from-yaml
input_pattern: "%d.input"
debug: false
`
	if err := os.WriteFile(DefaultConfigFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	if err := os.WriteFile(".env", []byte("AOC_DEBUG=true\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Setenv("AOC_INPUT_DIR", "from-env")
	t.Setenv("AOC_DEBUG", "")
	os.Unsetenv("AOC_DEBUG")
	t.Setenv("AOC_INPUT_PATTERN", "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	want := Config{InputDir: "from-env", InputPattern: "%d.input", Debug: true}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadConfig(missing) succeeded")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("input_dir: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("LoadConfig(bad yaml) succeeded")
	}

	t.Setenv("AOC_DEBUG", "maybe")
	if _, err := LoadConfig(""); err == nil {
		t.Error("LoadConfig with AOC_DEBUG=maybe succeeded")
	}
}
