package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/ledger"
	"github.com/krikodium/hermanascaradonti/internal/model"
	"github.com/krikodium/hermanascaradonti/internal/repository"
)

type ShopCashService interface {
	Create(ctx context.Context, user string, req dto.CreateShopCashRequest) (*dto.ShopCashResponse, error)
	List(ctx context.Context, filter dto.ShopCashFilter) (*dto.ShopCashListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ShopCashResponse, error)
	Summary(ctx context.Context) (*ledger.ShopCashSummary, error)
}

type shopCashService struct {
	repo repository.ShopCashRepository
}

func NewShopCashService(repo repository.ShopCashRepository) ShopCashService {
	return &shopCashService{repo: repo}
}

func (s *shopCashService) Create(ctx context.Context, user string, req dto.CreateShopCashRequest) (*dto.ShopCashResponse, error) {
	entry := &model.ShopCashEntry{
		Date:                parseDate(req.Date),
		Provider:            req.Provider,
		Client:              req.Client,
		InternalCoordinator: req.InternalCoordinator,

		Quantity:        req.Quantity,
		ItemDescription: req.ItemDescription,
		SKU:             req.SKU,

		SoldAmountARS: req.SoldAmountARS,
		SoldAmountUSD: req.SoldAmountUSD,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		CostARS:       req.CostARS,
		CostUSD:       req.CostUSD,

		CommissionRate: model.DefaultCommissionRate,
		Status:         model.SalePending,
		Comments:       req.Comments,
		CreatedBy:      user,
	}
	if req.CommissionRate != nil {
		entry.CommissionRate = *req.CommissionRate
	}
	if req.BillingData != nil {
		entry.BillingData = model.BillingDataDoc{Data: &model.ClientBillingData{
			CUIT:    req.BillingData.CUIT,
			Email:   req.BillingData.Email,
			Address: req.BillingData.Address,
			Phone:   req.BillingData.Phone,
		}}
	}

	entry.CalculateAmounts()

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	resp := toShopCashResponse(entry)
	return &resp, nil
}

func (s *shopCashService) List(ctx context.Context, filter dto.ShopCashFilter) (*dto.ShopCashListResponse, error) {
	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ShopCashResponse, len(entries))
	for i := range entries {
		data[i] = toShopCashResponse(&entries[i])
	}
	return &dto.ShopCashListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *shopCashService) Get(ctx context.Context, id uuid.UUID) (*dto.ShopCashResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := toShopCashResponse(entry)
	return &resp, nil
}

func (s *shopCashService) Summary(ctx context.Context) (*ledger.ShopCashSummary, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := ledger.SummarizeShopCash(entries)
	return &summary, nil
}

func toShopCashResponse(e *model.ShopCashEntry) dto.ShopCashResponse {
	resp := dto.ShopCashResponse{
		ID:                  e.ID.String(),
		Date:                fmtDate(e.Date),
		Provider:            e.Provider,
		Client:              e.Client,
		InternalCoordinator: e.InternalCoordinator,

		Quantity:        e.Quantity,
		ItemDescription: e.ItemDescription,
		SKU:             e.SKU,

		SoldAmountARS: e.SoldAmountARS,
		SoldAmountUSD: e.SoldAmountUSD,
		PaymentMethod: string(e.PaymentMethod),
		CostARS:       e.CostARS,
		CostUSD:       e.CostUSD,

		NetSaleARS:     e.NetSaleARS,
		NetSaleUSD:     e.NetSaleUSD,
		CommissionRate: e.CommissionRate,
		CommissionARS:  e.CommissionARS,
		CommissionUSD:  e.CommissionUSD,
		ProfitARS:      e.ProfitARS,
		ProfitUSD:      e.ProfitUSD,

		Status:    string(e.Status),
		Comments:  e.Comments,
		CreatedBy: e.CreatedBy,
		CreatedAt: fmtTime(e.CreatedAt),
	}
	if e.BillingData.Data != nil {
		resp.BillingData = &dto.BillingDataRequest{
			CUIT:    e.BillingData.Data.CUIT,
			Email:   e.BillingData.Data.Email,
			Address: e.BillingData.Data.Address,
			Phone:   e.BillingData.Data.Phone,
		}
	}
	return resp
}
