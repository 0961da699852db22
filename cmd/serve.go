package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/interview-insights/internal/httpapi"
	"github.com/spigell/interview-insights/internal/interview"
	"github.com/spigell/interview-insights/internal/store"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve interview summaries over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default :8080)")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, config := setup()

	if !viper.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	narrator, err := newNarrator(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping AI narration", zap.Error(err))
	}

	routerCfg := httpapi.RouterConfig{
		Summarizer: interview.NewSummarizer(logger, narrator, config.Concurrency),
		Logger:     logger,
	}

	if config.Database != "" {
		st, err := store.Open(config.Database)
		if err != nil {
			logger.Fatal("opening database", zap.Error(err))
		}
		defer st.Close()
		routerCfg.Store = st
	}

	addr := ":8080"
	if config.Server != nil && config.Server.Addr != "" {
		addr = config.Server.Addr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewRouter(routerCfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting the http server", zap.String("addr", addr), zap.String("version", version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down the http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown", zap.Error(err))
		}
	}
}
