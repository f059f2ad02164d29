package service

import (
	"context"

	"homecare_portal/internal/model"
	"homecare_portal/internal/upstream"
)

type BillingService struct {
	API *upstream.BillingAPI
}

func NewBillingService(api *upstream.BillingAPI) *BillingService {
	return &BillingService{API: api}
}

func (s *BillingService) List(ctx context.Context, bearer string, f model.InvoiceFilter) ([]model.Invoice, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return s.API.ListInvoices(ctx, bearer, f)
}

func (s *BillingService) Get(ctx context.Context, bearer, id string) (*model.Invoice, error) {
	return s.API.GetInvoice(ctx, bearer, id)
}

func (s *BillingService) Create(ctx context.Context, bearer string, inv *model.Invoice) (*model.Invoice, error) {
	return s.API.CreateInvoice(ctx, bearer, inv)
}

func (s *BillingService) Update(ctx context.Context, bearer, id string, inv *model.Invoice) (*model.Invoice, error) {
	return s.API.UpdateInvoice(ctx, bearer, id, inv)
}

func (s *BillingService) RecordPayment(ctx context.Context, bearer, invoiceID string, p *model.Payment) (*model.Invoice, error) {
	return s.API.RecordPayment(ctx, bearer, invoiceID, p)
}

func (s *BillingService) Statement(ctx context.Context, bearer, patientID string) ([]model.Invoice, int64, error) {
	return s.API.Statement(ctx, bearer, patientID)
}
