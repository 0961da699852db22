package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/interview-insights/internal/interview"
)

type summarizer interface {
	Summarize(ctx context.Context, iv interview.Interview) (*interview.Summary, error)
}

type interviewStore interface {
	GetInterview(ctx context.Context, id string) (interview.Interview, error)
}

type RouterConfig struct {
	Summarizer summarizer
	// Store is optional; without it stored interviews cannot be summarized.
	Store  interviewStore
	Logger *zap.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Logger))

	h := &handler{
		summarizer: cfg.Summarizer,
		store:      cfg.Store,
		logger:     cfg.Logger,
	}

	r.GET("/healthcheck", HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/summaries", h.SummarizeInterview)

		if cfg.Store != nil {
			api.GET("/interviews/:id/summary", h.SummarizeStored)
		}
	}

	return r
}
