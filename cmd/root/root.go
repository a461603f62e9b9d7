// Package root contains the root command for the application
package root

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"avoronin/cashback-matrix/internal/common"
	"avoronin/cashback-matrix/internal/config"
	"avoronin/cashback-matrix/internal/fileutils"
	"avoronin/cashback-matrix/internal/logging"
	"avoronin/cashback-matrix/internal/oracle"
	"avoronin/cashback-matrix/internal/store"
)

// FileFlags holds the session file locations shared by all commands.
type FileFlags struct {
	Session string
	Banks   string
	Aliases string
	Output  string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cashback-matrix",
		Short: "A CLI tool to reconcile cashback category offers from multiple banks.",
		Long: `cashback-matrix collects cashback category offers recognized from bank app
screenshots and comments, deduplicates them, picks each bank's best categories
within its selection limit, and renders a category-by-bank matrix telling you
which category to enable in which bank this period.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cashback-matrix!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)
			logging.SetDefault(logging.NewLogrusAdapterFromLogger(Log))

			store.SetLogger(Log)
			common.SetLogger(Log)
			fileutils.SetLogger(Log)
		},
	}

	// Files holds the file location flags shared by all commands.
	Files = FileFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&Files.Session, "session", "", "Session file with accumulated offers (default session.yaml)")
	Cmd.PersistentFlags().StringVar(&Files.Banks, "banks", "", "Bank configuration file (default banks.yaml)")
	Cmd.PersistentFlags().StringVar(&Files.Aliases, "aliases", "", "Bank alias table file (default aliases.yaml)")
	Cmd.PersistentFlags().StringVarP(&Files.Output, "output", "o", "", "Output file (default: print to stdout)")
}

// NewStore builds the session store from flags and configuration. Flags win
// over config file values.
func NewStore() *store.SessionStore {
	sessionFile := Files.Session
	banksFile := Files.Banks
	aliasesFile := Files.Aliases

	if Cfg != nil {
		if sessionFile == "" {
			sessionFile = Cfg.Files.Session
		}
		if banksFile == "" {
			banksFile = Cfg.Files.Banks
		}
		if aliasesFile == "" {
			aliasesFile = Cfg.Files.Aliases
		}
	}

	return store.NewSessionStore(sessionFile, banksFile, aliasesFile)
}

// NewOracleClient builds the Gemini client from configuration.
func NewOracleClient() (*oracle.GeminiClient, error) {
	model := "gemini-2.0-flash"
	apiKey := config.GetGeminiAPIKey()
	timeout := 60 * time.Second

	if Cfg != nil {
		model = Cfg.AI.Model
		apiKey = Cfg.AI.APIKey
		timeout = time.Duration(Cfg.AI.TimeoutSeconds) * time.Second
	}

	return oracle.NewGeminiClient(model, apiKey, timeout, logging.NewLogrusAdapterFromLogger(Log))
}
