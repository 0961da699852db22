package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/interview-insights/internal/interview"
	"github.com/spigell/interview-insights/internal/report"
	"github.com/spigell/interview-insights/internal/store"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize strengths and gaps of an interview",
	Long: `Summarize reads an interview from a YAML/JSON file (--input) or from the database
(--interview-id) and prints strengths and gaps per section. Without either flag a stored
interview is chosen interactively.`,
	Run: func(cmd *cobra.Command, _ []string) {
		summarize(cmd)
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringP("input", "i", "", "interview file (yaml or json)")
	summarizeCmd.Flags().String("interview-id", "", "id of an imported interview")
	summarizeCmd.Flags().StringP("output", "o", "", "output format: markdown, json or html")

	viper.BindPFlag("output", summarizeCmd.Flags().Lookup("output"))
}

func summarize(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, config := setup()

	format, err := report.ParseFormat(config.Output)
	if err != nil {
		logger.Fatal("parsing output format", zap.Error(err))
	}

	iv, err := loadInterview(ctx, cmd, config, logger)
	if err != nil {
		logger.Fatal("loading interview", zap.Error(err))
	}

	narrator, err := newNarrator(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping AI narration", zap.Error(err))
	}

	summary, err := interview.NewSummarizer(logger, narrator, config.Concurrency).Summarize(ctx, iv)
	if err != nil {
		logger.Fatal("summarizing interview", zap.Error(err))
	}

	if err := report.Render(cmd.OutOrStdout(), summary, format); err != nil {
		logger.Fatal("rendering summary", zap.Error(err))
	}
}

func loadInterview(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger) (interview.Interview, error) {
	input, _ := cmd.Flags().GetString("input")
	id, _ := cmd.Flags().GetString("interview-id")

	if input != "" {
		if id != "" {
			return interview.Interview{}, errors.New("--input and --interview-id are mutually exclusive")
		}

		logger.Info("reading interview file", zap.String("file", input))
		return interview.LoadFile(input)
	}

	st, err := store.Open(config.Database)
	if err != nil {
		return interview.Interview{}, err
	}
	defer st.Close()

	if id == "" {
		id, err = selectInterview(ctx, st)
		if err != nil {
			return interview.Interview{}, err
		}
	}

	logger.Info("reading interview from database", zap.String("database", config.Database), zap.String("interview_id", id))
	return st.GetInterview(ctx, id)
}

func selectInterview(ctx context.Context, st *store.Store) (string, error) {
	headers, err := st.ListInterviews(ctx)
	if err != nil {
		return "", err
	}

	if len(headers) == 0 {
		return "", errors.New("no interviews imported; use --input or run import first")
	}

	items := make([]string, 0, len(headers))
	for _, h := range headers {
		items = append(items, headerLabel(h))
	}

	prompt := promptui.Select{
		Label: "Choose an interview and press ENTER",
		Items: items,
		Size:  10,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selecting interview: %w", err)
	}

	return headers[idx].ID, nil
}

func headerLabel(h store.Header) string {
	candidate := h.Candidate
	if candidate == "" {
		candidate = "unknown candidate"
	}

	label := fmt.Sprintf("%s  %s", h.ID, candidate)
	if h.Position != "" {
		label += " / " + h.Position
	}

	return fmt.Sprintf("%s / %d sections / %s", label, h.Sections, h.CreatedAt.Format("2006-01-02 15:04"))
}
