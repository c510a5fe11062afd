package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"stint/internal/config"
	"stint/internal/dateformat"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively edit the settings file",
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := runSetupForm()
		if err != nil {
			return err
		}

		if err := updated.Validate(); err != nil {
			return fmt.Errorf("invalid settings: %w", err)
		}

		if err := updated.Save(settingsPath); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		fmt.Printf("✓ Settings saved to %s\n", settingsPath)
		return nil
	},
}

// runSetupForm edits a copy of the current settings interactively
func runSetupForm() (updated config.Settings, err error) {
	updated = settings
	historySize := strconv.Itoa(settings.HistorySize)

	patternOptions := make([]huh.Option[string], 0)
	for _, pattern := range dateformat.Patterns() {
		patternOptions = append(patternOptions, huh.NewOption(pattern, pattern))
	}

	// Bounds are stored in ISO form regardless of the display pattern.
	validateDate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		result := dateformat.Parse(s, dateformat.DefaultPattern)
		if result.Kind != dateformat.KindValid {
			return fmt.Errorf("not a valid %s date", dateformat.DefaultPattern)
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Date pattern").
				Options(patternOptions...).
				Value(&updated.Pattern),
			huh.NewInput().
				Title("Minimum date (YYYY-MM-DD, optional)").
				Value(&updated.MinDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Maximum date (YYYY-MM-DD, optional)").
				Value(&updated.MaxDate).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Allow single-day ranges?").
				Value(&updated.AllowSingleDayRange),
			huh.NewConfirm().
				Title("Allow clearing one bound of a full range?").
				Value(&updated.AllowUnboundedRange),
			huh.NewConfirm().
				Title("Allow relative input (today, +7d, mon)?").
				Value(&updated.AllowRelativeInput),
			huh.NewConfirm().
				Title("Open the calendar when a field gains focus?").
				Value(&updated.OpenOnFocus),
			huh.NewConfirm().
				Title("Select the field text on focus?").
				Value(&updated.SelectAllOnFocus),
			huh.NewInput().
				Title("Recent selections to show").
				Value(&historySize).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 0 {
						return fmt.Errorf("must be a non-negative number")
					}
					return nil
				}),
		),
	)

	if err = form.Run(); err != nil {
		return updated, fmt.Errorf("setup cancelled: %w", err)
	}

	updated.HistorySize, _ = strconv.Atoi(strings.TrimSpace(historySize))
	return updated, nil
}
