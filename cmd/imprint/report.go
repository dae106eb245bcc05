package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"imprint-hq/imprint/pkg/fingerprint/storage"
	"imprint-hq/imprint/pkg/sniff"
)

var (
	reportKind   string
	reportPrefix string
	reportLimit  int
	reportJSON   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "List recorded fingerprints",
	Long: `List fingerprint records from the configured store, optionally
filtered by content kind or path prefix. Records are ordered by path.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportKind, "kind", "", "filter by content kind (json, xml-or-html, binary, text, unknown)")
	reportCmd.Flags().StringVar(&reportPrefix, "prefix", "", "filter by path prefix")
	reportCmd.Flags().IntVar(&reportLimit, "limit", 0, "maximum number of records to list (0 = no limit)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "emit records as JSON")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if reportKind != "" {
		if _, ok := sniff.ParseKind(reportKind); !ok {
			return fmt.Errorf("unknown content kind %q", reportKind)
		}
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context(), storage.ListOptions{
		Kind:       reportKind,
		PathPrefix: reportPrefix,
		Limit:      reportLimit,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if reportJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tKIND\tSIZE\tDIGEST\tSCANNED")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			rec.Path, rec.Kind, rec.Size, rec.Digest,
			rec.ScannedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
