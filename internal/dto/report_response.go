package dto

import (
	"logreport/internal/aggregator"
	"logreport/internal/service"
)

type ReportRequest struct {
	File   string `form:"file" binding:"required"`
	Level  string `form:"level"`
	Format string `form:"format"`
}

type ReportResponse struct {
	ID         string                  `json:"id" yaml:"id"`
	Source     string                  `json:"source" yaml:"source"`
	Digest     string                  `json:"digest" yaml:"digest"`
	Bytes      int64                   `json:"bytes" yaml:"bytes"`
	Entries    int                     `json:"entries" yaml:"entries"`
	Counts     []aggregator.LevelCount `json:"counts" yaml:"counts"`
	Level      string                  `json:"level,omitempty" yaml:"level,omitempty"`
	Lines      []string                `json:"lines" yaml:"lines"`
	Diagnostic string                  `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
	Suggestion string                  `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func NewReportResponse(report *service.Report) ReportResponse {
	lines := report.Filter.Lines
	if lines == nil {
		lines = []string{}
	}
	return ReportResponse{
		ID:         report.ID,
		Source:     report.Source,
		Digest:     report.Digest,
		Bytes:      report.Bytes,
		Entries:    report.Entries,
		Counts:     report.Counts.Items(),
		Level:      report.Filter.Level,
		Lines:      lines,
		Diagnostic: report.Filter.Diagnostic,
		Suggestion: report.Filter.Suggestion,
	}
}
