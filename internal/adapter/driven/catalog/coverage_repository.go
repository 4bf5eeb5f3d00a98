package catalog

import (
	"context"
	"log/slog"

	"github.com/diillson/billswitch/internal/domain/comparison"
	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/domain/repository"
)

type locationScore struct {
	carrierID  string
	home, work int
}

// Mocked figures; there is no coverage provider behind this lookup.
var mockedCoverage = []locationScore{
	{carrierID: "verizon", home: 95, work: 92},
	{carrierID: "att", home: 91, work: 88},
	{carrierID: "tmobile", home: 89, work: 93},
	{carrierID: "visible", home: 90, work: 85},
	{carrierID: "mint", home: 80, work: 75},
}

// CoverageRepositoryImpl implementa o CoverageRepository.
type CoverageRepositoryImpl struct{}

// NewCoverageRepository cria o verificador de cobertura.
func NewCoverageRepository() repository.CoverageRepository {
	return &CoverageRepositoryImpl{}
}

// Check valida os CEPs e devolve a cobertura de cada operadora nos dois locais.
func (r *CoverageRepositoryImpl) Check(ctx context.Context, homeZip, workZip string) (entity.CoverageReport, error) {
	if err := comparison.ValidateZip(homeZip); err != nil {
		return entity.CoverageReport{}, err
	}
	if err := comparison.ValidateZip(workZip); err != nil {
		return entity.CoverageReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return entity.CoverageReport{}, err
	}

	report := entity.CoverageReport{
		HomeZip:  homeZip,
		WorkZip:  workZip,
		Carriers: make([]entity.LocationCoverage, 0, len(mockedCoverage)),
	}
	for _, s := range mockedCoverage {
		report.Carriers = append(report.Carriers, comparison.LocationCoverageFor(s.carrierID, s.home, s.work))
	}

	slog.Debug("coverage checked", "home", homeZip, "work", workZip, "carriers", len(report.Carriers))
	return report, nil
}
