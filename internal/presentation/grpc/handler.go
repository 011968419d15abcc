package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kassa-app/kassa/internal/application/usecase"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/pkg/observability"
)

// UseCases bundles the application layer for the handler.
type UseCases struct {
	CreateCredit            *usecase.CreateCreditUseCase
	GetCredit               *usecase.GetCreditUseCase
	UpdateCredit            *usecase.UpdateCreditUseCase
	RegenerateSchedule      *usecase.RegenerateScheduleUseCase
	RecordEarlyPayment      *usecase.RecordEarlyPaymentUseCase
	DeleteEarlyPayment      *usecase.DeleteEarlyPaymentUseCase
	GetCreditSummary        *usecase.GetCreditSummaryUseCase
	MarkSchedulePayment     *usecase.MarkSchedulePaymentUseCase
	OpenDeposit             *usecase.OpenDepositUseCase
	GetDeposit              *usecase.GetDepositUseCase
	ProjectMaturity         *usecase.ProjectMaturityUseCase
	CloseDepositEarly       *usecase.CloseDepositEarlyUseCase
	PlanDistributions       *usecase.PlanDistributionsUseCase
	ConfirmDistribution     *usecase.ConfirmDistributionUseCase
	CancelDistribution      *usecase.CancelDistributionUseCase
	RecalculateBudgetLimits *usecase.RecalculateBudgetLimitsUseCase
	RecordBudgetActual      *usecase.RecordBudgetActualUseCase
}

// KassaHandler implements KassaServiceServer on top of the use cases.
type KassaHandler struct {
	UnimplementedKassaServiceServer

	uc      UseCases
	metrics *observability.Metrics
}

// NewKassaHandler creates the handler with all use-case dependencies.
func NewKassaHandler(uc UseCases, metrics *observability.Metrics) *KassaHandler {
	return &KassaHandler{uc: uc, metrics: metrics}
}

func (h *KassaHandler) CreateCredit(ctx context.Context, in *CreateCreditRequest) (*CreditResponse, error) {
	resp, err := h.uc.CreateCredit.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	h.metrics.SchedulesGenerated.Inc()
	return &resp, nil
}

func (h *KassaHandler) GetCredit(ctx context.Context, in *GetCreditRequest) (*CreditResponse, error) {
	resp, err := h.uc.GetCredit.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) UpdateCredit(ctx context.Context, in *UpdateCreditRequest) (*CreditResponse, error) {
	resp, err := h.uc.UpdateCredit.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) RegenerateSchedule(ctx context.Context, in *RegenerateScheduleRequest) (*CreditResponse, error) {
	resp, err := h.uc.RegenerateSchedule.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	h.metrics.SchedulesGenerated.Inc()
	return &resp, nil
}

func (h *KassaHandler) RecordEarlyPayment(ctx context.Context, in *RecordEarlyPaymentRequest) (*CreditResponse, error) {
	resp, err := h.uc.RecordEarlyPayment.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	h.metrics.EarlyPaymentsApplied.Inc()
	return &resp, nil
}

func (h *KassaHandler) DeleteEarlyPayment(ctx context.Context, in *DeleteEarlyPaymentRequest) (*CreditResponse, error) {
	resp, err := h.uc.DeleteEarlyPayment.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) GetCreditSummary(ctx context.Context, in *GetCreditSummaryRequest) (*CreditSummaryResponse, error) {
	resp, err := h.uc.GetCreditSummary.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) MarkSchedulePayment(ctx context.Context, in *MarkSchedulePaymentRequest) (*CreditResponse, error) {
	resp, err := h.uc.MarkSchedulePayment.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) OpenDeposit(ctx context.Context, in *OpenDepositRequest) (*DepositResponse, error) {
	resp, err := h.uc.OpenDeposit.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) GetDeposit(ctx context.Context, in *GetDepositRequest) (*DepositResponse, error) {
	resp, err := h.uc.GetDeposit.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) ProjectMaturity(ctx context.Context, in *ProjectMaturityRequest) (*MaturityProjectionResponse, error) {
	resp, err := h.uc.ProjectMaturity.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	h.metrics.DepositsProjected.Inc()
	return &resp, nil
}

func (h *KassaHandler) CloseDepositEarly(ctx context.Context, in *CloseDepositEarlyRequest) (*CloseDepositResponse, error) {
	resp, err := h.uc.CloseDepositEarly.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) PlanDistributions(ctx context.Context, in *PlanDistributionsRequest) (*DistributionPlanResponse, error) {
	resp, err := h.uc.PlanDistributions.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) ConfirmDistribution(ctx context.Context, in *ConfirmDistributionRequest) (*DistributionResponse, error) {
	resp, err := h.uc.ConfirmDistribution.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	h.metrics.DistributionsConfirmed.Inc()
	return &resp, nil
}

func (h *KassaHandler) CancelDistribution(ctx context.Context, in *CancelDistributionRequest) (*DistributionResponse, error) {
	resp, err := h.uc.CancelDistribution.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	h.metrics.DistributionsCancelled.Inc()
	return &resp, nil
}

func (h *KassaHandler) RecalculateBudgetLimits(ctx context.Context, in *RecalculateBudgetLimitsRequest) (*BudgetLimitsResponse, error) {
	resp, err := h.uc.RecalculateBudgetLimits.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

func (h *KassaHandler) RecordBudgetActual(ctx context.Context, in *RecordBudgetActualRequest) (*BudgetLimitsResponse, error) {
	resp, err := h.uc.RecordBudgetActual.Execute(ctx, *in)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &resp, nil
}

// mapError turns domain errors into gRPC status codes and counts the failure.
func (h *KassaHandler) mapError(err error) error {
	var code codes.Code
	var kind string

	switch {
	case errors.Is(err, model.ErrValidation):
		code, kind = codes.InvalidArgument, "validation"
	case errors.Is(err, model.ErrNotFound):
		code, kind = codes.NotFound, "not_found"
	case errors.Is(err, model.ErrOverpaymentRejected):
		code, kind = codes.FailedPrecondition, "overpayment"
	case errors.Is(err, model.ErrIllegalStateTransition):
		code, kind = codes.FailedPrecondition, "illegal_transition"
	case errors.Is(err, model.ErrInvariantViolation):
		code, kind = codes.Internal, "invariant"
	default:
		code, kind = codes.Internal, "internal"
	}

	h.metrics.OperationErrors.WithLabelValues(kind).Inc()
	return status.Error(code, err.Error())
}
