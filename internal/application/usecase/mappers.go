package usecase

import (
	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/service"
)

func scheduleSpecFor(credit model.Credit) service.ScheduleSpec {
	return service.ScheduleSpec{
		CreditID:    credit.ID(),
		Principal:   credit.Principal(),
		AnnualRate:  credit.Rate(),
		TermMonths:  credit.TermMonths(),
		StartDate:   credit.StartDate(),
		PaymentDay:  credit.PaymentDay(),
		BankPayment: credit.BankPayment(),
	}
}

func toCreditResponse(credit model.Credit, items []model.ScheduleItem, eps []model.EarlyPayment) dto.CreditResponse {
	resp := dto.CreditResponse{
		ID:          credit.ID().String(),
		Name:        credit.Name(),
		Principal:   credit.Principal().Amount(),
		Currency:    credit.Principal().Currency().String(),
		RatePercent: credit.Rate().Percent(),
		TermMonths:  credit.TermMonths(),
		StartDate:   credit.StartDate(),
		PaymentDay:  credit.PaymentDay(),
		Status:      string(credit.Status()),
		CreatedAt:   credit.CreatedAt(),
		UpdatedAt:   credit.UpdatedAt(),
	}
	for _, item := range items {
		resp.Schedule = append(resp.Schedule, toScheduleItemResponse(item))
	}
	for _, ep := range eps {
		resp.EarlyPayments = append(resp.EarlyPayments, dto.EarlyPaymentResponse{
			ID:     ep.ID.String(),
			Date:   ep.Date,
			Amount: ep.Amount.Amount(),
			Kind:   string(ep.Kind),
		})
	}
	return resp
}

func toScheduleItemResponse(item model.ScheduleItem) dto.ScheduleItemResponse {
	return dto.ScheduleItemResponse{
		Number:           item.Number,
		DueDate:          item.DueDate,
		Principal:        item.Principal.Amount(),
		Interest:         item.Interest.Amount(),
		Total:            item.Total.Amount(),
		RemainingBalance: item.RemainingBalance.Amount(),
		Paid:             item.Paid,
	}
}

func toDepositResponse(deposit model.Deposit, records []model.AccrualRecord) dto.DepositResponse {
	resp := dto.DepositResponse{
		ID:            deposit.ID().String(),
		FundID:        deposit.FundID().String(),
		Principal:     deposit.Principal().Amount(),
		Currency:      deposit.Principal().Currency().String(),
		RatePercent:   deposit.Rate().Percent(),
		TermMonths:    deposit.TermMonths(),
		AccrualPeriod: string(deposit.AccrualPeriod()),
		Capitalizing:  deposit.Capitalizing(),
		StartDate:     deposit.StartDate(),
		MaturityDate:  deposit.MaturityDate(),
		Status:        string(deposit.Status()),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toAccrualRecordResponse(rec))
	}
	return resp
}

func toAccrualRecordResponse(rec model.AccrualRecord) dto.AccrualRecordResponse {
	return dto.AccrualRecordResponse{
		Number:    rec.Number,
		PeriodEnd: rec.PeriodEnd,
		Interest:  rec.Interest.Amount(),
		Balance:   rec.Balance.Amount(),
	}
}

func toDistributionResponse(dist model.IncomeDistribution) dto.DistributionResponse {
	resp := dto.DistributionResponse{
		ID:       dist.ID().String(),
		IncomeID: dist.IncomeID().String(),
		FundID:   dist.FundID().String(),
		Planned:  dist.Planned().Amount(),
		Status:   string(dist.Status()),
	}
	if c := dist.Confirmation(); c != nil {
		actual := c.ActualAmount.Amount()
		completed := c.CompletedAt
		resp.ActualAmount = &actual
		resp.CompletedAt = &completed
	}
	return resp
}

func toBudgetLimitsResponse(item model.BudgetItem) dto.BudgetLimitsResponse {
	resp := dto.BudgetLimitsResponse{BudgetItemID: item.ID().String()}
	for _, limit := range item.Limits() {
		resp.Limits = append(resp.Limits, dto.CurrencyLimitResponse{
			Currency:   limit.Currency.String(),
			TotalLimit: limit.TotalLimit.Amount(),
			Buffer:     limit.Buffer.Amount(),
			Actual:     limit.Actual.Amount(),
			Remaining:  limit.Remaining().Amount(),
		})
	}
	return resp
}
