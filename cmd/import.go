package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/interview-insights/internal/interview"
	"github.com/spigell/interview-insights/internal/logger"
	"github.com/spigell/interview-insights/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an interview file into the database",
	Run: func(cmd *cobra.Command, _ []string) {
		importInterview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("input", "i", "", "interview file (yaml or json)")
	importCmd.MarkFlagRequired("input")
}

func importInterview(cmd *cobra.Command) {
	ctx := context.Background()

	log, config := setup()

	input, _ := cmd.Flags().GetString("input")

	iv, err := interview.LoadFile(input)
	if err != nil {
		log.Fatal("loading interview", zap.Error(err))
	}

	st, err := store.Open(config.Database)
	if err != nil {
		log.Fatal("opening database", zap.Error(err))
	}
	defer st.Close()

	id, err := st.SaveInterview(ctx, iv)
	if err != nil {
		log.Fatal("saving interview", zap.Error(err))
	}

	logger.WithFields(log, logger.InterviewFields(id, iv.Candidate)...).Info("interview imported",
		zap.String("database", config.Database),
		zap.Int("sections", len(iv.Sections)),
	)

	fmt.Fprintln(cmd.OutOrStdout(), id)
}
