package repository

import (
	"context"

	"github.com/diillson/billswitch/internal/domain/entity"
)

// BillExtractor sends a bill file to the external extraction service and returns
// its raw JSON response. Implementations must return *types.TransportError when
// the call cannot complete or the service answers with a non-2xx status.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=extractor.go
type BillExtractor interface {
	Extract(ctx context.Context, upload entity.BillUpload) ([]byte, error)
}

// CarrierRepository provides the catalog of alternative carriers.
type CarrierRepository interface {
	Alternatives(ctx context.Context) ([]entity.CarrierOffer, error)
	Profiles(ctx context.Context) ([]entity.CarrierProfile, error)
	DefaultCurrentPlan() entity.CurrentPlan
}

// CoverageRepository reports carrier coverage at the user's home and work ZIP codes.
type CoverageRepository interface {
	Check(ctx context.Context, homeZip, workZip string) (entity.CoverageReport, error)
}
