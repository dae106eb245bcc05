package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"imprint-hq/imprint/pkg/fingerprint/scanner"
	"imprint-hq/imprint/pkg/telemetry/logging"
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Walk a directory tree and record fingerprints",
	Long: `Walk the directory tree rooted at the given path, fingerprint every
regular file that passes the configured filters, and upsert the results
into the configured store. The root argument overrides scan.root from the
configuration file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Scan.Root = args[0]
	}

	if _, err := logging.Setup(&cfg.Logging); err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc := scanner.New(&cfg.Scan, store, nil)
	summary, err := sc.Scan(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scan %s complete\n", summary.ScanID)
	fmt.Fprintf(out, "  root:     %s\n", summary.Root)
	fmt.Fprintf(out, "  files:    %d\n", summary.Files)
	fmt.Fprintf(out, "  bytes:    %d\n", summary.Bytes)
	fmt.Fprintf(out, "  skipped:  %d\n", summary.Skipped)
	fmt.Fprintf(out, "  errors:   %d\n", summary.Errors)
	fmt.Fprintf(out, "  duration: %s\n", summary.Duration)
	for kind, count := range summary.ByKind {
		fmt.Fprintf(out, "  %-8s  %d\n", kind.String()+":", count)
	}
	return nil
}
