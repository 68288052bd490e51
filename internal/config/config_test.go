package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useTempConfig points ConfigPath at a file inside a temp dir for one test
func useTempConfig(t *testing.T) string {
	t.Helper()

	testConfigPath := filepath.Join(t.TempDir(), ".evned")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})

	return testConfigPath
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  &Config{Token: "S=s1:U=b73d", Editor: "vim"},
			wantErr: false,
		},
		{
			name:    "empty token",
			config:  &Config{Editor: "vim"},
			wantErr: true,
		},
		{
			name:    "empty editor",
			config:  &Config{Token: "S=s1:U=b73d"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCreatesMissingFile(t *testing.T) {
	testConfigPath := useTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}
	if cfg.Token != "" || cfg.Editor != "" {
		t.Errorf("Expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	testConfigPath := useTempConfig(t)

	testCfg := &Config{
		Token:   "S=s1:U=b73d:E=144369d53e9",
		Editor:  "subl -n",
		Sandbox: true,
		LogFile: "/tmp/evned-test.log",
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	info, err := os.Stat(testConfigPath)
	if err != nil {
		t.Fatalf("Config file was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if *loadedCfg != *testCfg {
		t.Errorf("Config mismatch: got %+v, want %+v", loadedCfg, testCfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	testConfigPath := useTempConfig(t)

	if err := os.WriteFile(testConfigPath, []byte("token: [unterminated"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected parse error")
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{name: "production", config: Config{}, want: ProductionURL},
		{name: "sandbox", config: Config{Sandbox: true}, want: SandboxURL},
		{name: "endpoint wins", config: Config{Sandbox: true, Endpoint: "http://localhost:8080"}, want: "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaskedToken(t *testing.T) {
	cfg := &Config{Token: "S=s1:U=b73d:H=cae2"}
	if got := cfg.MaskedToken(); got != "****cae2" {
		t.Errorf("MaskedToken() = %q", got)
	}
	if strings.Contains((&Config{Token: "abc"}).MaskedToken(), "abc") {
		t.Error("short token leaked")
	}
}

func TestSaveKeepsUnexpandedLogFile(t *testing.T) {
	testConfigPath := useTempConfig(t)

	if err := os.WriteFile(testConfigPath, []byte("token: tok\nlog_file: ~/evned.log\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.LogFile != "~/evned.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "~/evned.log")
	}

	cfg.Editor = "vim"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	data, err := os.ReadFile(testConfigPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if !strings.Contains(string(data), "~/evned.log") {
		t.Errorf("saved config lost the ~ in log_file:\n%s", data)
	}

	homeDir, _ := os.UserHomeDir()
	path, err := cfg.LogPath()
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}
	if want := filepath.Join(homeDir, "evned.log"); path != want {
		t.Errorf("LogPath() = %q, want %q", path, want)
	}
}

func TestLogPathEmpty(t *testing.T) {
	path, err := (&Config{}).LogPath()
	if err != nil || path != "" {
		t.Errorf("LogPath() = %q, %v; want empty", path, err)
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "tilde expansion", input: "~/evned.log", want: filepath.Join(homeDir, "evned.log")},
		{name: "tilde only", input: "~", want: homeDir},
		{name: "absolute path", input: "/tmp/evned.log", want: "/tmp/evned.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result != tt.want {
				t.Errorf("expandPath() = %q, want %q", result, tt.want)
			}
		})
	}
}
