package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/interview-insights/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported interviews",
	Run: func(cmd *cobra.Command, _ []string) {
		list(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config := setup()

	st, err := store.Open(config.Database)
	if err != nil {
		logger.Fatal("opening database", zap.Error(err))
	}
	defer st.Close()

	headers, err := st.ListInterviews(ctx)
	if err != nil {
		logger.Fatal("listing interviews", zap.Error(err))
	}

	logger.Debug("listing interviews", zap.Int("count", len(headers)))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCANDIDATE\tPOSITION\tSECTIONS\tCREATED")
	for _, h := range headers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", h.ID, h.Candidate, h.Position, h.Sections, h.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}
