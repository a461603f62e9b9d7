// Package store persists the session data between command invocations: the
// accumulated raw entries, the bank configuration and the alias table, all as
// human-editable YAML files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"avoronin/cashback-matrix/internal/config"
	"avoronin/cashback-matrix/internal/engine"
	"avoronin/cashback-matrix/internal/models"
)

var log = config.Logger

// SetLogger allows setting a custom logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SessionStore manages loading and saving of session data.
type SessionStore struct {
	SessionFile string
	BanksFile   string
	AliasesFile string
}

// NewSessionStore creates a store over the given file names. Empty names fall
// back to the defaults (session.yaml, banks.yaml, aliases.yaml).
func NewSessionStore(sessionFile, banksFile, aliasesFile string) *SessionStore {
	return &SessionStore{
		SessionFile: sessionFile,
		BanksFile:   banksFile,
		AliasesFile: aliasesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *SessionStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "cashback-matrix", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Wire formats. Percentages travel as strings so hand-edited files may write
// "7" or "7%" interchangeably.

type sessionEntry struct {
	ID           string `yaml:"id,omitempty"`
	Bank         string `yaml:"bank"`
	Category     string `yaml:"category"`
	Percent      string `yaml:"percent"`
	OriginalText string `yaml:"original_text,omitempty"`
}

type sessionDocument struct {
	Entries []sessionEntry `yaml:"entries"`
}

type banksDocument struct {
	Banks []models.BankSetting `yaml:"banks"`
}

type aliasesDocument struct {
	Aliases []engine.AliasRule `yaml:"aliases"`
}

// LoadEntries loads the accumulated raw entries. A missing session file is an
// empty session, not an error.
func (s *SessionStore) LoadEntries() ([]models.RawEntry, error) {
	filename := s.SessionFile
	if filename == "" {
		filename = "session.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) || err == os.ErrNotExist {
			log.Debugf("Session file not found: %s", filename)
			return []models.RawEntry{}, nil
		}
		return nil, fmt.Errorf("error resolving session file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading session file: %w", err)
	}

	var doc sessionDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing session file: %w", err)
	}

	entries := make([]models.RawEntry, 0, len(doc.Entries))
	for i, wire := range doc.Entries {
		id := wire.ID
		if id == "" {
			id = fmt.Sprintf("s%04d", i+1)
		}
		entries = append(entries, models.RawEntry{
			ID:           id,
			BankName:     wire.Bank,
			Category:     wire.Category,
			Percent:      models.ParsePercent(wire.Percent),
			OriginalText: wire.OriginalText,
		})
	}

	log.Debugf("Loaded %d entries from %s", len(entries), filePath)
	return entries, nil
}

// SaveEntries replaces the session file with the given entries.
func (s *SessionStore) SaveEntries(entries []models.RawEntry) error {
	filename := s.SessionFile
	if filename == "" {
		filename = "session.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		// New session file in the working directory.
		filePath = filename
	}

	doc := sessionDocument{Entries: make([]sessionEntry, 0, len(entries))}
	for _, entry := range entries {
		doc.Entries = append(doc.Entries, sessionEntry{
			ID:           entry.ID,
			Bank:         entry.BankName,
			Category:     entry.Category,
			Percent:      entry.Percent.String(),
			OriginalText: entry.OriginalText,
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}

	log.Debugf("Saved %d entries to %s", len(doc.Entries), filePath)
	return nil
}

// AppendEntries adds entries to the session and saves it. Entries without an
// ID get a sequential one. A failed extraction never reaches this point, so a
// session only ever grows by complete, parsed batches.
func (s *SessionStore) AppendEntries(entries []models.RawEntry) error {
	existing, err := s.LoadEntries()
	if err != nil {
		return err
	}

	for i, entry := range entries {
		if entry.ID == "" {
			entry.ID = fmt.Sprintf("s%04d", len(existing)+i+1)
		}
		existing = append(existing, entry)
	}

	return s.SaveEntries(existing)
}

// LoadBanks loads the bank configuration, falling back to defaults when no
// banks file exists.
func (s *SessionStore) LoadBanks() ([]models.BankSetting, error) {
	filename := s.BanksFile
	if filename == "" {
		filename = "banks.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		log.Debugf("Banks file not found, using defaults: %s", filename)
		return models.DefaultBankSettings(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading banks file: %w", err)
	}

	var doc banksDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing banks file: %w", err)
	}
	if len(doc.Banks) == 0 {
		return models.DefaultBankSettings(), nil
	}

	log.Debugf("Loaded %d bank settings from %s", len(doc.Banks), filePath)
	return doc.Banks, nil
}

// SaveBanks writes the bank configuration.
func (s *SessionStore) SaveBanks(banks []models.BankSetting) error {
	filename := s.BanksFile
	if filename == "" {
		filename = "banks.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		filePath = filename
	}

	data, err := yaml.Marshal(banksDocument{Banks: banks})
	if err != nil {
		return fmt.Errorf("error marshaling banks: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing banks file: %w", err)
	}

	log.Debugf("Saved %d bank settings to %s", len(banks), filePath)
	return nil
}

// LoadAliases loads the bank alias table, falling back to the built-in table
// when no aliases file exists.
func (s *SessionStore) LoadAliases() (engine.AliasTable, error) {
	filename := s.AliasesFile
	if filename == "" {
		filename = "aliases.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		log.Debugf("Aliases file not found, using built-in table: %s", filename)
		return engine.DefaultAliasTable(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading aliases file: %w", err)
	}

	var doc aliasesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing aliases file: %w", err)
	}
	if len(doc.Aliases) == 0 {
		return engine.DefaultAliasTable(), nil
	}

	log.Debugf("Loaded %d alias rules from %s", len(doc.Aliases), filePath)
	return engine.AliasTable(doc.Aliases), nil
}
