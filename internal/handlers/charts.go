package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"stress-checker/internal/models"
	"stress-checker/internal/repository"
	"stress-checker/internal/scoring"
)

type ChartsHandler struct {
	log *zap.Logger
}

func NewChartsHandler(log *zap.Logger) *ChartsHandler {
	return &ChartsHandler{log: log}
}

// ScoreTimeline serves the echarts options for the score-over-time line
// chart on the history page.
func (h *ChartsHandler) ScoreTimeline(c *gin.Context) {
	user := currentUser(c)
	points, err := repository.GetScoreTimeline(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to get score timeline", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": models.Error("Gagal memuat grafik skor")})
		return
	}

	c.JSON(http.StatusOK, generateScoreChart(points).JSON())
}

func generateScoreChart(data []repository.ScorePoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Skor Stres dari Waktu ke Waktu",
			Subtitle: "Total skor PSS-10",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			// The instrument's total is always within [0,40]; fix the
			// axis so charts are comparable across sessions.
			Min: 0,
			Max: scoring.MaxScore,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0, len(data))
	for _, point := range data {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.Score}})
	}

	line.AddSeries("Skor", items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}
