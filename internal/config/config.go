package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"locstore/internal/domain"
)

// Backend names for the preference store.
const (
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

type Config struct {
	PrefsBackend   string
	DatabaseURL    string
	MigrationsPath string
	PrefsFile      string
	DefaultLocale  domain.Language
	Locales        []domain.Language
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		PrefsBackend:   os.Getenv("PREFS_BACKEND"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		PrefsFile:      os.Getenv("PREFS_FILE"),
		DefaultLocale:  domain.Language(os.Getenv("DEFAULT_LOCALE")),
	}
	for _, code := range strings.Split(os.Getenv("LOCALES"), ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			cfg.Locales = append(cfg.Locales, domain.Language(code))
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	switch strings.TrimSpace(c.PrefsBackend) {
	case "":
		c.PrefsBackend = BackendPostgres
	case BackendPostgres, BackendFile:
	default:
		return fmt.Errorf("config: PREFS_BACKEND doit être %q ou %q (reçu %q)", BackendPostgres, BackendFile, c.PrefsBackend)
	}

	if c.PrefsBackend == BackendPostgres {
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
			c.DatabaseURL = "postgres://localhost:5432/locstore?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
		if strings.TrimSpace(c.MigrationsPath) == "" {
			c.MigrationsPath = "migrations"
		}
	}

	if c.PrefsBackend == BackendFile && strings.TrimSpace(c.PrefsFile) == "" {
		c.PrefsFile = "locstore.toml"
	}

	if c.DefaultLocale == "" {
		c.DefaultLocale = "en"
	}
	if !c.DefaultLocale.IsValid() {
		return fmt.Errorf("config: DEFAULT_LOCALE invalide (%q)", c.DefaultLocale)
	}

	if len(c.Locales) == 0 {
		c.Locales = []domain.Language{"en", "ko"}
	}
	for _, locale := range c.Locales {
		if !locale.IsValid() {
			return fmt.Errorf("config: LOCALES contient un code invalide (%q)", locale)
		}
	}
	if !domain.Contains(c.Locales, c.DefaultLocale) {
		return fmt.Errorf("config: DEFAULT_LOCALE (%q) doit figurer dans LOCALES", c.DefaultLocale)
	}

	return nil
}
