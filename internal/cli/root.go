package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stint/internal/config"
	"stint/internal/dateformat"
	"stint/internal/daterange"
	"stint/internal/history"
	"stint/internal/logger"
	"stint/internal/tui"
	"stint/internal/watch"
)

var (
	settings     config.Settings
	settingsPath string
	store        *history.Store
)

// Flag overrides for the root command. Empty values leave the loaded
// settings untouched.
var (
	formatFlag    string
	minDateFlag   string
	maxDateFlag   string
	startFlag     string
	endFlag       string
	singleDayFlag bool
	unboundedFlag bool
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "stint",
	Short: "Stint - terminal date range picker",
	Long: `A terminal date range picker with two editable fields, a month
calendar, reusable shortcuts, and a history of picked ranges. The
selected range is printed on exit, one date per bound.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyFlagOverrides(cmd); err != nil {
			return err
		}

		watcher, err := watch.NewWatcher(settingsPath)
		if err != nil {
			logger.Warn("cli: settings watcher unavailable", "error", err)
			watcher = nil
		}

		model := tui.NewModel(settings, store, watcher)
		if seed, ok, err := seedRange(); err != nil {
			return err
		} else if ok {
			model.SetInitialRange(seed)
		}
		p := tea.NewProgram(model, tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return err
		}

		finalModel, ok := final.(*tui.Model)
		if !ok {
			return nil
		}

		accepted := finalModel.Accepted()
		if accepted.BothUnset() {
			return nil
		}

		if store != nil {
			if _, err := store.Save(accepted); err != nil {
				logger.Warn("cli: could not save selection", "error", err)
			}
		}

		fmt.Println(formatRange(accepted, settings.Pattern))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initApp)

	RootCmd.Flags().StringVar(&formatFlag, "format", "", "Date display pattern, e.g. DD/MM/YYYY")
	RootCmd.Flags().StringVar(&minDateFlag, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	RootCmd.Flags().StringVar(&maxDateFlag, "max", "", "Latest selectable date (YYYY-MM-DD)")
	RootCmd.Flags().StringVar(&startFlag, "start", "", "Preselected start date (absolute or relative)")
	RootCmd.Flags().StringVar(&endFlag, "end", "", "Preselected end date (absolute or relative)")
	RootCmd.Flags().BoolVar(&singleDayFlag, "single-day", false, "Allow start == end")
	RootCmd.Flags().BoolVar(&unboundedFlag, "unbounded", false, "Allow deselecting one bound of a full range")

	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(setupCmd)
}

// applyFlagOverrides layers command line flags over the loaded settings.
func applyFlagOverrides(cmd *cobra.Command) error {
	if formatFlag != "" {
		settings.Pattern = formatFlag
	}
	if minDateFlag != "" {
		settings.MinDate = minDateFlag
	}
	if maxDateFlag != "" {
		settings.MaxDate = maxDateFlag
	}
	if cmd.Flags().Changed("single-day") {
		settings.AllowSingleDayRange = singleDayFlag
	}
	if cmd.Flags().Changed("unbounded") {
		settings.AllowUnboundedRange = unboundedFlag
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// seedRange builds a preselected range from the --start/--end flags.
// Relative forms like today or -7d are accepted.
func seedRange() (daterange.Range, bool, error) {
	if startFlag == "" && endFlag == "" {
		return daterange.Empty, false, nil
	}

	parse := func(text, flag string) (daterange.Date, error) {
		if text == "" {
			return daterange.Unset(), nil
		}
		result := dateformat.ParseRelative(text, settings.Pattern)
		if result.Kind != dateformat.KindValid {
			return daterange.Unset(), fmt.Errorf("invalid --%s date %q", flag, text)
		}
		return daterange.On(result.Date), nil
	}

	start, err := parse(startFlag, "start")
	if err != nil {
		return daterange.Empty, false, err
	}
	end, err := parse(endFlag, "end")
	if err != nil {
		return daterange.Empty, false, err
	}

	if ok, _ := daterange.OrderPair(start, end, settings.AllowSingleDayRange); !ok {
		return daterange.Empty, false, fmt.Errorf("--start must not be after --end")
	}
	return daterange.Range{Start: start, End: end}, true, nil
}

// initApp loads settings and opens the history store
func initApp() {
	dataDir, err := config.DataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving data directory: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitializeTUI(dataDir); err != nil {
		// Fall back to stderr logging
		logger.Initialize()
	}

	settingsPath, err = config.SettingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving settings path: %v\n", err)
		os.Exit(1)
	}

	settings, err = config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	dbPath, err := config.DatabasePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving database path: %v\n", err)
		os.Exit(1)
	}

	store, err = history.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
