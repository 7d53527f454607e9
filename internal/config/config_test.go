package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), DefaultFile, `
encrypted_dir: out
variant: rijndael
rounds: 14
block_mode: chained
padding: pkcs7
compress: true
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.EncryptedDir = "out"
	want.Variant = "rijndael"
	want.Rounds = 14
	want.BlockMode = "chained"
	want.Padding = "pkcs7"
	want.Compress = true
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), DefaultFile, "variant: rijndael\nrounds: 14\n")
	t.Setenv("CHAOSCRYPT_VARIANT", "aes-cbc")
	t.Setenv("CHAOSCRYPT_ROUNDS", "12")
	t.Setenv("CHAOSCRYPT_COMPRESS", "true")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Variant != "aes-cbc" || cfg.Rounds != 12 || !cfg.Compress {
		t.Errorf("Load() = %+v, env overrides not applied", cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "CHAOSCRYPT_KEY_DIR=secrets\n")
	t.Cleanup(func() { os.Unsetenv("CHAOSCRYPT_KEY_DIR") })

	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.KeyDir != "secrets" {
		t.Errorf("KeyDir = %q, want secrets", cfg.KeyDir)
	}
}

func TestLoad_MissingDotEnv(t *testing.T) {
	if _, err := Load("", filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("Load() error = %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{"bad yaml", "rounds: [1, 2\n", nil},
		{"unknown field", "colour: blue\n", nil},
		{"bad variant", "variant: des\n", nil},
		{"bad block mode", "block_mode: ctr\n", nil},
		{"bad padding", "padding: ansi\n", nil},
		{"too few rounds", "rounds: 1\n", nil},
		{"empty dir", "key_dir: \"\"\n", nil},
		{"bad env rounds", "", map[string]string{"CHAOSCRYPT_ROUNDS": "ten"}},
		{"bad env compress", "", map[string]string{"CHAOSCRYPT_COMPRESS": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), DefaultFile, tt.yaml)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(path, ""); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
