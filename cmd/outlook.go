package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hrs/internal/config"
	"hrs/internal/msgraph"
	"hrs/internal/timelog"
)

var (
	outlookPushDryRun bool
	outlookPushTZ     string
)

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Outlook calendar integration",
}

var outlookPushCmd = &cobra.Command{
	Use:   "push <file> <date>",
	Short: "Create Outlook calendar events from one day's log entries",
	Args:  cobra.ExactArgs(2),
	RunE:  runOutlookPush,
}

func init() {
	outlookPushCmd.Flags().BoolVar(&outlookPushDryRun, "dry-run", false, "Print planned events without creating them")
	outlookPushCmd.Flags().StringVar(&outlookPushTZ, "timezone", "", "IANA timezone for event times (e.g. Europe/Berlin)")
	outlookCmd.AddCommand(outlookPushCmd)
}

func runOutlookPush(cmd *cobra.Command, args []string) error {
	path, date := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", path, err)
	}

	entries := timelog.ParseDay(timelog.FindDayBlock(string(data), date))
	if len(entries) == 0 {
		fmt.Printf("No entries found for %s, nothing to push.\n", date)
		return nil
	}

	day, err := msgraph.ResolveDay(date, time.Now())
	if err != nil {
		return err
	}

	timezone := outlookPushTZ
	if timezone == "" {
		timezone = cfg.Outlook.Timezone
	}

	dryTag := ""
	if outlookPushDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Pushing %d entries to Outlook for %s%s...\n",
		len(entries), day.Format("2006-01-02"), dryTag)
	fmt.Println()

	ctx := context.Background()
	opts := msgraph.PushOptions{
		Day:      day,
		Timezone: timezone,
		DryRun:   outlookPushDryRun,
	}

	var api msgraph.EventCreator
	if !outlookPushDryRun {
		tok, oc, err := msgraph.Authenticate(ctx, cfg.Outlook.TenantID, cfg.Outlook.ClientID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
			os.Exit(1)
		}
		api = msgraph.NewClient(ctx, tok, oc)
	}

	result := msgraph.Push(ctx, api, entries, opts)

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %d created\n", result.Created)
	fmt.Printf("  %d skipped\n", result.Skipped)
	if result.Errors > 0 {
		fmt.Printf("  %d errors\n", result.Errors)
		os.Exit(2)
	}
	return nil
}
