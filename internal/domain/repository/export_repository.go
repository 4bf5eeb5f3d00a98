package repository

import (
	"github.com/diillson/billswitch/internal/domain/entity"
)

// ExportRepository writes an analysis report to disk and returns the absolute path.
//
//go:generate mockgen -destination=mocks/mock_export_repository.go -package=mocks -source=export_repository.go
type ExportRepository interface {
	ExportToCSV(report entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToXLSX(report entity.AnalysisReport, filename string, outputDir string) (string, error)
}
