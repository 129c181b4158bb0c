package controller

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"logreport/config"
	"logreport/internal/dto"
	"logreport/internal/ingest"
	"logreport/internal/report"
	"logreport/internal/service"
)

type ReportController struct {
	reportService service.ReportService
	table         *report.TextRenderer
}

func NewReportController(reportService service.ReportService, cfg *config.Config) *ReportController {
	return &ReportController{
		reportService: reportService,
		table:         &report.TextRenderer{Table: report.NewTableRenderer(cfg.Report.LevelHeader, cfg.Report.CountHeader)},
	}
}

func RegisterReportRoutes(router *gin.Engine, controller *ReportController) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/report", controller.GetReport)
	}
}

// GetReport godoc
// @Summary      Count log entries by level
// @Description  Parses one log file under the configured base directory, counts its entries per level and optionally lists the entries of one level. A single malformed line fails the whole request.
// @Tags         reports
// @Produce      json
// @Produce      plain
// @Param        file    query     string  true   "Log file name, relative to the base directory"
// @Param        level   query     string  false  "Level to list (case-insensitive)"
// @Param        format  query     string  false  "Response format (default: json)" Enums(json, table)
// @Success      200     {object}  dto.ReportResponse
// @Failure      400     {object}  dto.ErrorResponse "Invalid query parameters"
// @Failure      404     {object}  dto.ErrorResponse "File not found"
// @Failure      422     {object}  dto.ErrorResponse "Malformed log line"
// @Failure      500     {object}  dto.ErrorResponse "File could not be read"
// @Router       /api/v1/report [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	var req dto.ReportRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Query parameter 'file' is required."})
		return
	}
	if !filepath.IsLocal(req.File) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "File must be a relative path inside the log directory."})
		return
	}
	format := strings.ToLower(req.Format)
	if format != "" && format != "json" && format != "table" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Format must be json or table."})
		return
	}

	result, err := c.reportService.Generate(ctx.Request.Context(), req.File, req.Level)
	if err != nil {
		status, message := errorStatus(err)
		log.Error().Err(err).Str("file", req.File).Int("status", status).Msg("Error generating report")
		ctx.JSON(status, dto.ErrorResponse{Message: message})
		return
	}

	if format == "table" {
		var buf bytes.Buffer
		if err := c.table.Render(&buf, result); err != nil {
			log.Error().Err(err).Msg("Error rendering report table")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to render report"})
			return
		}
		ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
		return
	}

	ctx.JSON(http.StatusOK, dto.NewReportResponse(result))
}

func errorStatus(err error) (int, string) {
	var (
		accessErr *ingest.FileAccessError
		readErr   *ingest.IOReadError
		formatErr *ingest.LogFormatError
	)
	switch {
	case errors.As(err, &accessErr):
		return http.StatusNotFound, "File not found."
	case errors.As(err, &formatErr):
		return http.StatusUnprocessableEntity, "Error parsing data: " + formatErr.Error()
	case errors.As(err, &readErr):
		return http.StatusInternalServerError, "Error reading file."
	default:
		return http.StatusInternalServerError, "Failed to generate report"
	}
}
