package grpc

// proto.go defines the gRPC server interface derived from kassa/v1/kassa.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is
// run, replace this file with the import from github.com/kassa-app/kassa/api/gen/go/kassa/v1.
// The request/response messages alias the application DTOs, which carry the
// JSON tags used by the registered json codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kassa-app/kassa/internal/application/dto"
)

type (
	CreateCreditRequest            = dto.CreateCreditRequest
	GetCreditRequest               = dto.GetCreditRequest
	UpdateCreditRequest            = dto.UpdateCreditRequest
	RegenerateScheduleRequest      = dto.RegenerateScheduleRequest
	RecordEarlyPaymentRequest      = dto.RecordEarlyPaymentRequest
	DeleteEarlyPaymentRequest      = dto.DeleteEarlyPaymentRequest
	GetCreditSummaryRequest        = dto.GetCreditSummaryRequest
	MarkSchedulePaymentRequest     = dto.MarkSchedulePaymentRequest
	OpenDepositRequest             = dto.OpenDepositRequest
	GetDepositRequest              = dto.GetDepositRequest
	ProjectMaturityRequest         = dto.ProjectMaturityRequest
	CloseDepositEarlyRequest       = dto.CloseDepositEarlyRequest
	PlanDistributionsRequest       = dto.PlanDistributionsRequest
	ConfirmDistributionRequest     = dto.ConfirmDistributionRequest
	CancelDistributionRequest      = dto.CancelDistributionRequest
	RecalculateBudgetLimitsRequest = dto.RecalculateBudgetLimitsRequest
	RecordBudgetActualRequest      = dto.RecordBudgetActualRequest
	CreditResponse                 = dto.CreditResponse
	CreditSummaryResponse          = dto.CreditSummaryResponse
	DepositResponse                = dto.DepositResponse
	MaturityProjectionResponse     = dto.MaturityProjectionResponse
	CloseDepositResponse           = dto.CloseDepositResponse
	DistributionPlanResponse       = dto.DistributionPlanResponse
	DistributionResponse           = dto.DistributionResponse
	BudgetLimitsResponse           = dto.BudgetLimitsResponse
)

// KassaServiceServer is the server API for KassaService.
// It mirrors the proto-generated interface from kassa.v1.KassaService.
type KassaServiceServer interface {
	CreateCredit(context.Context, *CreateCreditRequest) (*CreditResponse, error)
	GetCredit(context.Context, *GetCreditRequest) (*CreditResponse, error)
	UpdateCredit(context.Context, *UpdateCreditRequest) (*CreditResponse, error)
	RegenerateSchedule(context.Context, *RegenerateScheduleRequest) (*CreditResponse, error)
	RecordEarlyPayment(context.Context, *RecordEarlyPaymentRequest) (*CreditResponse, error)
	DeleteEarlyPayment(context.Context, *DeleteEarlyPaymentRequest) (*CreditResponse, error)
	GetCreditSummary(context.Context, *GetCreditSummaryRequest) (*CreditSummaryResponse, error)
	MarkSchedulePayment(context.Context, *MarkSchedulePaymentRequest) (*CreditResponse, error)
	OpenDeposit(context.Context, *OpenDepositRequest) (*DepositResponse, error)
	GetDeposit(context.Context, *GetDepositRequest) (*DepositResponse, error)
	ProjectMaturity(context.Context, *ProjectMaturityRequest) (*MaturityProjectionResponse, error)
	CloseDepositEarly(context.Context, *CloseDepositEarlyRequest) (*CloseDepositResponse, error)
	PlanDistributions(context.Context, *PlanDistributionsRequest) (*DistributionPlanResponse, error)
	ConfirmDistribution(context.Context, *ConfirmDistributionRequest) (*DistributionResponse, error)
	CancelDistribution(context.Context, *CancelDistributionRequest) (*DistributionResponse, error)
	RecalculateBudgetLimits(context.Context, *RecalculateBudgetLimitsRequest) (*BudgetLimitsResponse, error)
	RecordBudgetActual(context.Context, *RecordBudgetActualRequest) (*BudgetLimitsResponse, error)
	mustEmbedUnimplementedKassaServiceServer()
}

// UnimplementedKassaServiceServer provides forward-compatible default implementations.
type UnimplementedKassaServiceServer struct{}

func (UnimplementedKassaServiceServer) CreateCredit(context.Context, *CreateCreditRequest) (*CreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateCredit not implemented")
}
func (UnimplementedKassaServiceServer) GetCredit(context.Context, *GetCreditRequest) (*CreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCredit not implemented")
}
func (UnimplementedKassaServiceServer) UpdateCredit(context.Context, *UpdateCreditRequest) (*CreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateCredit not implemented")
}
func (UnimplementedKassaServiceServer) RegenerateSchedule(context.Context, *RegenerateScheduleRequest) (*CreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegenerateSchedule not implemented")
}
func (UnimplementedKassaServiceServer) RecordEarlyPayment(context.Context, *RecordEarlyPaymentRequest) (*CreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordEarlyPayment not implemented")
}
func (UnimplementedKassaServiceServer) DeleteEarlyPayment(context.Context, *DeleteEarlyPaymentRequest) (*CreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteEarlyPayment not implemented")
}
func (UnimplementedKassaServiceServer) GetCreditSummary(context.Context, *GetCreditSummaryRequest) (*CreditSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCreditSummary not implemented")
}
func (UnimplementedKassaServiceServer) MarkSchedulePayment(context.Context, *MarkSchedulePaymentRequest) (*CreditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkSchedulePayment not implemented")
}
func (UnimplementedKassaServiceServer) OpenDeposit(context.Context, *OpenDepositRequest) (*DepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenDeposit not implemented")
}
func (UnimplementedKassaServiceServer) GetDeposit(context.Context, *GetDepositRequest) (*DepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDeposit not implemented")
}
func (UnimplementedKassaServiceServer) ProjectMaturity(context.Context, *ProjectMaturityRequest) (*MaturityProjectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProjectMaturity not implemented")
}
func (UnimplementedKassaServiceServer) CloseDepositEarly(context.Context, *CloseDepositEarlyRequest) (*CloseDepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseDepositEarly not implemented")
}
func (UnimplementedKassaServiceServer) PlanDistributions(context.Context, *PlanDistributionsRequest) (*DistributionPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlanDistributions not implemented")
}
func (UnimplementedKassaServiceServer) ConfirmDistribution(context.Context, *ConfirmDistributionRequest) (*DistributionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmDistribution not implemented")
}
func (UnimplementedKassaServiceServer) CancelDistribution(context.Context, *CancelDistributionRequest) (*DistributionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelDistribution not implemented")
}
func (UnimplementedKassaServiceServer) RecalculateBudgetLimits(context.Context, *RecalculateBudgetLimitsRequest) (*BudgetLimitsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecalculateBudgetLimits not implemented")
}
func (UnimplementedKassaServiceServer) RecordBudgetActual(context.Context, *RecordBudgetActualRequest) (*BudgetLimitsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordBudgetActual not implemented")
}
func (UnimplementedKassaServiceServer) mustEmbedUnimplementedKassaServiceServer() {}

// RegisterKassaServiceServer registers the KassaServiceServer with the gRPC server.
func RegisterKassaServiceServer(s *grpclib.Server, srv KassaServiceServer) {
	s.RegisterService(&_KassaService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _KassaService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "kassa.v1.KassaService",
	HandlerType: (*KassaServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateCredit", Handler: _KassaService_CreateCredit_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "GetCredit", Handler: _KassaService_GetCredit_Handler},                             //nolint:revive // gRPC handler registration
		{MethodName: "UpdateCredit", Handler: _KassaService_UpdateCredit_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "RegenerateSchedule", Handler: _KassaService_RegenerateSchedule_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "RecordEarlyPayment", Handler: _KassaService_RecordEarlyPayment_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "DeleteEarlyPayment", Handler: _KassaService_DeleteEarlyPayment_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetCreditSummary", Handler: _KassaService_GetCreditSummary_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "MarkSchedulePayment", Handler: _KassaService_MarkSchedulePayment_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "OpenDeposit", Handler: _KassaService_OpenDeposit_Handler},                         //nolint:revive // gRPC handler registration
		{MethodName: "GetDeposit", Handler: _KassaService_GetDeposit_Handler},                           //nolint:revive // gRPC handler registration
		{MethodName: "ProjectMaturity", Handler: _KassaService_ProjectMaturity_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "CloseDepositEarly", Handler: _KassaService_CloseDepositEarly_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "PlanDistributions", Handler: _KassaService_PlanDistributions_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "ConfirmDistribution", Handler: _KassaService_ConfirmDistribution_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "CancelDistribution", Handler: _KassaService_CancelDistribution_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "RecalculateBudgetLimits", Handler: _KassaService_RecalculateBudgetLimits_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "RecordBudgetActual", Handler: _KassaService_RecordBudgetActual_Handler},           //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_CreateCredit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateCreditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).CreateCredit(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/CreateCredit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).CreateCredit(ctx, req.(*CreateCreditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_GetCredit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCreditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).GetCredit(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/GetCredit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).GetCredit(ctx, req.(*GetCreditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_RegenerateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegenerateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).RegenerateSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/RegenerateSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).RegenerateSchedule(ctx, req.(*RegenerateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_RecordEarlyPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordEarlyPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).RecordEarlyPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/RecordEarlyPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).RecordEarlyPayment(ctx, req.(*RecordEarlyPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_DeleteEarlyPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteEarlyPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).DeleteEarlyPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/DeleteEarlyPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).DeleteEarlyPayment(ctx, req.(*DeleteEarlyPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_GetCreditSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCreditSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).GetCreditSummary(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/GetCreditSummary",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).GetCreditSummary(ctx, req.(*GetCreditSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_MarkSchedulePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarkSchedulePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).MarkSchedulePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/MarkSchedulePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).MarkSchedulePayment(ctx, req.(*MarkSchedulePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_OpenDeposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenDepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).OpenDeposit(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/OpenDeposit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).OpenDeposit(ctx, req.(*OpenDepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_GetDeposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).GetDeposit(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/GetDeposit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).GetDeposit(ctx, req.(*GetDepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_ProjectMaturity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProjectMaturityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).ProjectMaturity(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/ProjectMaturity",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).ProjectMaturity(ctx, req.(*ProjectMaturityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_CloseDepositEarly_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseDepositEarlyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).CloseDepositEarly(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/CloseDepositEarly",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).CloseDepositEarly(ctx, req.(*CloseDepositEarlyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_PlanDistributions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlanDistributionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).PlanDistributions(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/PlanDistributions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).PlanDistributions(ctx, req.(*PlanDistributionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_ConfirmDistribution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmDistributionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).ConfirmDistribution(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/ConfirmDistribution",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).ConfirmDistribution(ctx, req.(*ConfirmDistributionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_CancelDistribution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelDistributionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).CancelDistribution(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/CancelDistribution",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).CancelDistribution(ctx, req.(*CancelDistributionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_RecalculateBudgetLimits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecalculateBudgetLimitsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).RecalculateBudgetLimits(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/RecalculateBudgetLimits",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).RecalculateBudgetLimits(ctx, req.(*RecalculateBudgetLimitsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_UpdateCredit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateCreditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).UpdateCredit(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/UpdateCredit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).UpdateCredit(ctx, req.(*UpdateCreditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _KassaService_RecordBudgetActual_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordBudgetActualRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KassaServiceServer).RecordBudgetActual(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kassa.v1.KassaService/RecordBudgetActual",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KassaServiceServer).RecordBudgetActual(ctx, req.(*RecordBudgetActualRequest))
	}
	return interceptor(ctx, in, info, handler)
}
