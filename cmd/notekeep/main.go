package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mrossetti/notekeep/internal/auth"
	"github.com/mrossetti/notekeep/internal/category"
	"github.com/mrossetti/notekeep/internal/config"
	"github.com/mrossetti/notekeep/internal/draft"
	"github.com/mrossetti/notekeep/internal/geo"
	"github.com/mrossetti/notekeep/internal/i18n"
	"github.com/mrossetti/notekeep/internal/note"
	"github.com/mrossetti/notekeep/internal/prefs"
	"github.com/mrossetti/notekeep/internal/share"
	"github.com/mrossetti/notekeep/internal/storage"
	"github.com/mrossetti/notekeep/internal/transfer"
	"github.com/mrossetti/notekeep/internal/ui"
)

func main() {
	if len(os.Args) == 1 {
		printLogo()
	}

	configPath := config.DefaultConfigPath()

	// First run: ask for a language and write a default config.
	if !config.ConfigExists(configPath) {
		if err := firstTimeSetup(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Setup error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Language != "" {
		i18n.SetLanguage(i18n.Language(cfg.Language))
	}

	logger, err := buildLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
		os.Exit(1)
	}
	defer logger.Sync()

	durable, err := storage.NewDurable(cfg.StorePath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
		os.Exit(1)
	}
	defer durable.Close()

	session := storage.NewSession(logger)
	defer session.Close()

	notes := note.NewRepository(durable)
	categories := category.NewRepository(durable, notes)
	prefsStore := prefs.NewStore(durable)

	deps := ui.Deps{
		Notes:      notes,
		Categories: categories,
		Auth:       auth.NewManager(durable),
		Drafts:     draft.NewStore(session),
		Prefs:      prefsStore,
		Transfer:   transfer.NewEngine(notes),
		Share:      share.NewService(cfg.ShareBaseURL, notes),
		Location:   geo.Fixed{Lat: cfg.Location.Lat, Lng: cfg.Location.Lng},
		Geocoder:   geo.NewClient(cfg.GeocodeURL),
		Config:     cfg,
	}

	// A share locator argument prints the referenced note instead of
	// starting the TUI.
	if len(os.Args) > 1 {
		printShared(deps.Share, os.Args[1])
		return
	}

	p := tea.NewProgram(ui.NewModel(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
		os.Exit(1)
	}
}

func printShared(svc *share.Service, locator string) {
	n := svc.Resolve(locator)
	if n == nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", i18n.T().Error, i18n.T().NoNoteSelected)
		os.Exit(1)
	}
	fmt.Println(n.Title)
	fmt.Println()
	fmt.Println(n.Content)
	if len(n.Tags) > 0 {
		fmt.Println()
		fmt.Println(i18n.T().Tags + ": " + strings.Join(n.Tags, ", "))
	}
}

// buildLogger writes structured logs to a file so they never bleed into the
// TUI's terminal output.
func buildLogger(path string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func printLogo() {
	fmt.Println()
	fmt.Println("  ███╗   ██╗ ██████╗ ████████╗███████╗██╗  ██╗███████╗███████╗██████╗ ")
	fmt.Println("  ████╗  ██║██╔═══██╗╚══██╔══╝██╔════╝██║ ██╔╝██╔════╝██╔════╝██╔══██╗")
	fmt.Println("  ██╔██╗ ██║██║   ██║   ██║   █████╗  █████╔╝ █████╗  █████╗  ██████╔╝")
	fmt.Println("  ██║╚██╗██║██║   ██║   ██║   ██╔══╝  ██╔═██╗ ██╔══╝  ██╔══╝  ██╔═══╝ ")
	fmt.Println("  ██║ ╚████║╚██████╔╝   ██║   ███████╗██║  ██╗███████╗███████╗██║     ")
	fmt.Println("  ╚═╝  ╚═══╝ ╚═════╝    ╚═╝   ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝     ")
	fmt.Println()
}

func firstTimeSetup(configPath string) error {
	fmt.Println("  Welcome to Notekeep! / Benvenuto in Notekeep!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("  Select language / Seleziona lingua:")
	fmt.Println("  [1] English")
	fmt.Println("  [2] Italiano")
	fmt.Print("  > ")

	choice, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	choice = strings.TrimSpace(choice)

	language := "en"
	if choice == "2" {
		language = "it"
	}
	i18n.SetLanguage(i18n.Language(language))

	cfg := &config.Config{
		StorePath: config.DefaultStorePath(),
		LogPath:   config.DefaultLogPath(),
		ExportDir: ".",
		Language:  language,
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	if language == "it" {
		fmt.Println("  Configurazione creata!")
		fmt.Println("  Modifica config.yml per personalizzare.")
	} else {
		fmt.Println("  Configuration created!")
		fmt.Println("  Edit config.yml to customize.")
	}
	fmt.Println()

	return nil
}
