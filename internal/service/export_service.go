package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/export"
	"github.com/dafibh/fortuna/fortuna-reports/internal/repository/storage"
	"github.com/rs/zerolog/log"
)

const byCategoriesReport = "by-categories"

// ExportService renders reports to documents and stores them
type ExportService struct {
	reportService *ReportService
	store         storage.ExportStore
}

// NewExportService creates a new ExportService. store may be nil when exports are disabled.
func NewExportService(reportService *ReportService, store storage.ExportStore) *ExportService {
	return &ExportService{
		reportService: reportService,
		store:         store,
	}
}

// Export renders the by-categories report for month in format and stores the document
func (s *ExportService) Export(ctx context.Context, month string, format domain.ExportFormat) (*domain.ExportResult, error) {
	if s.store == nil {
		return nil, domain.ErrStorageDisabled
	}
	if _, err := export.RendererFor(format); err != nil {
		return nil, err
	}

	rep, err := s.reportService.ByCategories(ctx, month)
	if err != nil {
		return nil, err
	}

	data, err := export.Bytes(format, rep)
	if err != nil {
		return nil, err
	}

	objectPath := storage.GenerateObjectPath(byCategoriesReport, rep.Month, format.Extension())
	location, err := s.store.Upload(ctx, objectPath, bytes.NewReader(data), format.ContentType(), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("store export: %w", err)
	}

	log.Info().
		Str("month", rep.Month).
		Str("format", string(format)).
		Str("object_path", objectPath).
		Int("size", len(data)).
		Msg("Report exported")

	return &domain.ExportResult{
		Format:   format,
		Location: location,
		Size:     int64(len(data)),
	}, nil
}
