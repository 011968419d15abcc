package usecase

import (
	"context"
	"fmt"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/internal/domain/service"
)

// ProjectMaturityUseCase answers "what will this deposit yield" without
// touching stored state.
type ProjectMaturityUseCase struct {
	depositRepo port.DepositRepository
}

// NewProjectMaturityUseCase wires dependencies.
func NewProjectMaturityUseCase(depositRepo port.DepositRepository) *ProjectMaturityUseCase {
	return &ProjectMaturityUseCase{depositRepo: depositRepo}
}

// Execute projects the deposit to maturity.
func (uc *ProjectMaturityUseCase) Execute(ctx context.Context, req dto.ProjectMaturityRequest) (dto.MaturityProjectionResponse, error) {
	id, err := parseID(req.DepositID, "deposit ID")
	if err != nil {
		return dto.MaturityProjectionResponse{}, err
	}

	deposit, err := uc.depositRepo.FindByID(ctx, id)
	if err != nil {
		return dto.MaturityProjectionResponse{}, fmt.Errorf("find deposit: %w", err)
	}

	proj, err := service.ProjectMaturity(deposit)
	if err != nil {
		return dto.MaturityProjectionResponse{}, fmt.Errorf("project maturity: %w", err)
	}

	resp := dto.MaturityProjectionResponse{
		DepositID:           deposit.ID().String(),
		FinalAmount:         proj.FinalAmount.Amount(),
		TotalYield:          proj.TotalYield.Amount(),
		EffectiveAnnualRate: proj.EffectiveAnnualRate,
		MaturityDate:        proj.MaturityDate,
	}
	for _, rec := range proj.Records {
		resp.Records = append(resp.Records, toAccrualRecordResponse(rec))
	}
	return resp, nil
}
