package config

import (
	"fmt"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked for in the working directory.
const DefaultFile = "tellerdesk.yaml"

// Config is the top-level tellerdesk.yaml configuration. Every field can
// be overridden with a TELLERDESK_* environment variable.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig carries the injected locations of the three persisted
// documents and the backup root.
type StorageConfig struct {
	AccountsFile string `yaml:"accounts_file" env:"TELLERDESK_ACCOUNTS_FILE"`
	AdminsFile   string `yaml:"admins_file" env:"TELLERDESK_ADMINS_FILE"`
	AuditLogFile string `yaml:"audit_log_file" env:"TELLERDESK_AUDIT_LOG_FILE"`
	BackupDir    string `yaml:"backup_dir" env:"TELLERDESK_BACKUP_DIR"`
}

// Paths returns the three document paths in accounts, admins, audit order.
func (s StorageConfig) Paths() []string {
	return []string{s.AccountsFile, s.AdminsFile, s.AuditLogFile}
}

// AuthConfig selects the password scheme ("plain" or "bcrypt").
type AuthConfig struct {
	Scheme string `yaml:"scheme" env:"TELLERDESK_AUTH_SCHEME"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `yaml:"level" env:"TELLERDESK_LOG_LEVEL"`
	Format string `yaml:"format" env:"TELLERDESK_LOG_FORMAT"` // "text" or "json"
}

// Load reads a tellerdesk.yaml file and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with document paths under dir/data.
func Default(dir string) *Config {
	dataDir := filepath.Join(dir, "data")
	return &Config{
		Storage: StorageConfig{
			AccountsFile: filepath.Join(dataDir, "bank_data.json"),
			AdminsFile:   filepath.Join(dataDir, "admin_data.json"),
			AuditLogFile: filepath.Join(dataDir, "admin_logs.json"),
			BackupDir:    filepath.Join(dir, "backups"),
		},
		Auth: AuthConfig{Scheme: "plain"},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}
