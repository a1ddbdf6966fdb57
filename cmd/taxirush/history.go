package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/taxi-rush/internal/logging"
	"github.com/vovakirdan/taxi-rush/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryPlayer string
	flagHistoryTop    bool
	flagHistoryID     string
	flagHistoryClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print past runs and per-role totals",
	Long: `Display finished runs from the history database, newest first.

Examples:
  taxirush history
  taxirush history --top --limit 5
  taxirush history --player Ann
  taxirush history --id 3f2a...
  taxirush history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "player", "", "Only show runs by this name")
	historyCmd.Flags().BoolVar(&flagHistoryTop, "top", false, "Order by score instead of date")
	historyCmd.Flags().StringVar(&flagHistoryID, "id", "", "Show a single run")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(os.Stderr, logging.Options{Level: flagLogLevel})
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		logger.Info("run history cleared", "db", flagDBPath)
		return nil
	}

	if flagHistoryID != "" {
		run, err := store.RunByID(flagHistoryID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("no run with id %q", flagHistoryID)
		}
		printRunDetail(out, *run)
		return nil
	}

	var runs []storage.Run
	switch {
	case flagHistoryPlayer != "":
		runs, err = store.PlayerRuns(flagHistoryPlayer, flagHistoryLimit)
	case flagHistoryTop:
		runs, err = store.TopRuns(flagHistoryLimit)
	default:
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'taxirush play' to record the first one!")
		return nil
	}
	printRuns(out, runs)

	stats, err := store.GetAllRoleStats()
	if err != nil {
		logger.Warn("cannot load role totals", "err", err)
		return nil
	}
	printRoleStats(out, stats)
	return nil
}

func printRuns(w io.Writer, runs []storage.Run) {
	fmt.Fprintf(w, "  %-16s  %-19s  %-8s  %5s  %-11s  %5s  %s\n",
		"Date", "Name", "Role", "Score", "Result", "Time", "ID")
	fmt.Fprintf(w, "  %-16s  %-19s  %-8s  %5s  %-11s  %5s  %s\n",
		"----", "----", "----", "-----", "------", "----", "--")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-16s  %-19s  %-8s  %5d  %-11s  %5s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Name, r.Role, r.Score,
			r.Outcome, formatClock(r.Duration.Seconds()), shortID(r.ID))
	}
}

func printRunDetail(w io.Writer, r storage.Run) {
	where := "local"
	if r.Remote {
		where = "ssh"
	}
	fmt.Fprintf(w, "Run %s\n\n", r.ID)
	fmt.Fprintf(w, "  Name:        %s\n", r.Name)
	fmt.Fprintf(w, "  Role:        %s\n", r.Role)
	fmt.Fprintf(w, "  Score:       %d\n", r.Score)
	fmt.Fprintf(w, "  Result:      %s\n", r.Outcome)
	fmt.Fprintf(w, "  Time:        %s\n", formatClock(r.Duration.Seconds()))
	fmt.Fprintf(w, "  Deliveries:  %d\n", r.Deliveries)
	fmt.Fprintf(w, "  Played:      %s (%s)\n", r.CreatedAt.Format("2006-01-02 15:04"), where)
}

func printRoleStats(w io.Writer, stats map[string]*storage.RoleStats) {
	roles := make([]string, 0, len(stats))
	for role := range stats {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	fmt.Fprintln(w)
	for _, role := range roles {
		s := stats[role]
		fmt.Fprintf(w, "%s: %d runs, %d wins, best %d, avg %.1f, %d deliveries\n",
			role, s.Runs, s.Wins, s.HighScore, s.AvgScore, s.TotalDeliveries)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatClock(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
