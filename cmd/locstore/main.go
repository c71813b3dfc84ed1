package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"locstore/internal/application"
	"locstore/internal/config"
	"locstore/internal/domain"
	"locstore/internal/infrastructure/database"
	"locstore/internal/infrastructure/i18n"
	"locstore/internal/infrastructure/prefsfile"
	"locstore/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	ctx := context.Background()

	var prefs output.PreferenceStore
	switch cfg.PrefsBackend {
	case config.BackendPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatalf("❌ Erreur lors des migrations: %v", err)
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
		}
		defer pool.Close()
		prefs = database.NewPreferenceRepository(pool)
	case config.BackendFile:
		prefs = prefsfile.NewStore(cfg.PrefsFile)
	}

	catalog := i18n.NewCatalog(cfg.DefaultLocale, cfg.Locales)
	svc, err := application.New(catalog, prefs, cfg.Locales, cfg.DefaultLocale)
	if err != nil {
		log.Fatalf("❌ Erreur lors de la construction du store: %v", err)
	}
	svc.Initialize(ctx)

	if err := run(ctx, svc, os.Args[1:]); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svc *application.LocalizationService, args []string) error {
	if len(args) == 0 {
		return usage()
	}

	switch args[0] {
	case "lang":
		if len(args) == 1 {
			fmt.Println(svc.Language())
			return nil
		}
		requested := domain.Language(args[1])
		active := svc.SetLanguage(ctx, requested)
		if active != requested {
			return fmt.Errorf("langue %q non supportée (langue active: %s)", requested, active)
		}
		fmt.Println(active)
		return nil
	case "t":
		if len(args) < 2 {
			return usage()
		}
		if len(args) >= 3 {
			fmt.Println(svc.Translate(args[1], args[2]))
			return nil
		}
		fmt.Println(svc.Translate(args[1]))
		return nil
	default:
		return usage()
	}
}

func usage() error {
	return fmt.Errorf("usage: locstore lang [code] | locstore t <clé> [fallback]")
}
