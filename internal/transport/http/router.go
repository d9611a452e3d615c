package rest

import (
	"net/http"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/Gunvolt24/distinsert/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// ReportSource — откуда берутся отчёты завершённых задач.
type ReportSource interface {
	Reports() []*domain.Report
	Report(store domain.StoreID) (*domain.Report, bool)
}

type Handler struct {
	reports ReportSource
	log     ports.Logger
}

func NewHandler(reports ReportSource, log ports.Logger) *Handler {
	return &Handler{reports: reports, log: log}
}

// NewRouter — служебные эндпоинты прогона. serviceName != "" включает otelgin.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/reports", h.listReports)
	r.GET("/reports/:store", h.getReport)

	return r
}

// reportSummary — отчёт без списка результатов.
type reportSummary struct {
	Store     domain.StoreID `json:"store"`
	Succeeded int            `json:"succeeded"`
	Rejected  int            `json:"rejected"`
	Failed    int            `json:"failed"`
	Took      string         `json:"took"`
}

func (h *Handler) listReports(c *gin.Context) {
	reports := h.reports.Reports()
	out := make([]reportSummary, 0, len(reports))
	for _, r := range reports {
		ok, rejected, failed := r.Counts()
		out = append(out, reportSummary{
			Store:     r.Store,
			Succeeded: ok,
			Rejected:  rejected,
			Failed:    failed,
			Took:      r.Took.String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"finished": len(out), "total": len(domain.Stores()), "reports": out})
}

func (h *Handler) getReport(c *gin.Context) {
	store := domain.StoreID(c.Param("store"))
	if !store.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown store"})
		return
	}
	report, ok := h.reports.Report(store)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not finished"})
		return
	}

	from, to := httpx.ParsePage(c, 20, 100).Window(len(report.Results))
	c.JSON(http.StatusOK, gin.H{
		"store":   report.Store,
		"total":   len(report.Results),
		"offset":  from,
		"results": report.Results[from:to],
	})
}
