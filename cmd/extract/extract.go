// Package extract handles the extraction oracle commands
package extract

import (
	"context"

	"github.com/spf13/cobra"

	"avoronin/cashback-matrix/cmd/root"
	"avoronin/cashback-matrix/internal/config"
	"avoronin/cashback-matrix/internal/fileutils"
	"avoronin/cashback-matrix/internal/models"
	"avoronin/cashback-matrix/internal/textutils"
)

var (
	imagePath string
	comment   string
	bankName  string
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract offers from a screenshot or comment and add them to the session",
	Long: `Send a bank app screenshot or a free-text comment to the recognition model
and append the extracted offers to the current session. A failed extraction
leaves the session exactly as it was.

Without a GEMINI_API_KEY, comments with simple "Category — 7%" lines can still
be extracted offline; pass --bank to say which bank the lines belong to.`,
	Run: extractFunc,
}

func init() {
	Cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Screenshot file to extract offers from")
	Cmd.Flags().StringVarP(&comment, "text", "t", "", "Free-text comment to extract offers from")
	Cmd.Flags().StringVarP(&bankName, "bank", "b", "", "Bank name for offline text extraction")
}

func extractFunc(cmd *cobra.Command, args []string) {
	if imagePath == "" && comment == "" {
		root.Log.Fatal("Either --image or --text is required")
	}

	var entries []models.RawEntry

	if comment != "" && config.GetGeminiAPIKey() == "" && apiKeyFromConfigMissing() {
		if bankName == "" {
			root.Log.Fatal("Offline text extraction needs --bank (or set GEMINI_API_KEY for model extraction)")
		}
		root.Log.Info("No API key configured, extracting offline")
		entries = textutils.ExtractOffers(comment, bankName)
	} else {
		var err error
		entries, err = extractWithModel()
		if err != nil {
			root.Log.Fatalf("Extraction failed, session unchanged: %v", err)
		}
	}

	if len(entries) == 0 {
		root.Log.Info("No offers recognized, session unchanged")
		return
	}

	if err := root.NewStore().AppendEntries(entries); err != nil {
		root.Log.Fatalf("Error saving session: %v", err)
	}
	root.Log.Infof("Added %d offers to the session", len(entries))
}

func apiKeyFromConfigMissing() bool {
	return root.Cfg == nil || root.Cfg.AI.APIKey == ""
}

func extractWithModel() ([]models.RawEntry, error) {
	client, err := root.NewOracleClient()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := client.Close(); err != nil {
			root.Log.Warnf("Failed to close client: %v", err)
		}
	}()

	ctx := context.Background()

	if imagePath != "" {
		data, err := fileutils.ReadFile(imagePath)
		if err != nil {
			return nil, err
		}
		return client.ExtractFromImage(ctx, data, fileutils.ImageFormat(imagePath))
	}

	return client.ExtractFromText(ctx, comment)
}
