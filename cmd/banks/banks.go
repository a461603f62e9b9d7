// Package banks handles the bank configuration command
package banks

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"avoronin/cashback-matrix/cmd/root"
	"avoronin/cashback-matrix/internal/models"
)

var (
	enableBank  string
	disableBank string
	limitBank   string
	limitValue  int
	colorBank   string
	colorValue  string
)

// Cmd represents the banks command
var Cmd = &cobra.Command{
	Use:   "banks",
	Short: "Show or change the per-bank configuration",
	Long: `Without flags, print the current bank configuration. With flags, change one
bank's entry: enable or disable it, or set its selection limit or display
color. Disabling a bank removes its column from the matrix and drops the
categories only it offered.`,
	Run: banksFunc,
}

func init() {
	Cmd.Flags().StringVar(&enableBank, "enable", "", "Enable a bank (Sber, T-Bank, Alfa, VTB, Yandex, Other)")
	Cmd.Flags().StringVar(&disableBank, "disable", "", "Disable a bank")
	Cmd.Flags().StringVar(&limitBank, "limit", "", "Bank whose selection limit to set (with --n)")
	Cmd.Flags().IntVar(&limitValue, "n", 0, "Selection limit for --limit")
	Cmd.Flags().StringVar(&colorBank, "color", "", "Bank whose display color to set (with --value)")
	Cmd.Flags().StringVar(&colorValue, "value", "", "Display color for --color")
}

func banksFunc(cmd *cobra.Command, args []string) {
	s := root.NewStore()

	settings, err := s.LoadBanks()
	if err != nil {
		root.Log.Fatalf("Error loading bank configuration: %v", err)
	}

	changed := false
	if enableBank != "" {
		settings, changed = apply(settings, enableBank, func(b *models.BankSetting) { b.Enabled = true })
	}
	if disableBank != "" {
		settings, changed = apply(settings, disableBank, func(b *models.BankSetting) { b.Enabled = false })
	}
	if limitBank != "" {
		if limitValue < 0 {
			root.Log.Fatalf("Limit must not be negative, got %d", limitValue)
		}
		settings, changed = apply(settings, limitBank, func(b *models.BankSetting) { b.Limit = limitValue })
	}
	if colorBank != "" {
		settings, changed = apply(settings, colorBank, func(b *models.BankSetting) { b.Color = colorValue })
	}

	if changed {
		if err := s.SaveBanks(settings); err != nil {
			root.Log.Fatalf("Error saving bank configuration: %v", err)
		}
		root.Log.Info("Bank configuration updated")
	}

	printSettings(settings)
}

// apply mutates the named bank's entry in place. Unknown bank names abort:
// the configuration is a closed set, silently adding rows would hide typos.
func apply(settings []models.BankSetting, name string, mutate func(*models.BankSetting)) ([]models.BankSetting, bool) {
	for i := range settings {
		if string(settings[i].Bank) == name {
			mutate(&settings[i])
			return settings, true
		}
	}
	root.Log.Fatalf("Unknown bank: %s", name)
	return settings, false
}

func printSettings(settings []models.BankSetting) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BANK\tENABLED\tLIMIT\tCOLOR")
	for _, s := range settings {
		fmt.Fprintf(w, "%s\t%v\t%d\t%s\n", s.Bank, s.Enabled, s.Limit, s.Color)
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
