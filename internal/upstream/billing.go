package upstream

import (
	"context"
	"net/url"

	"homecare_portal/internal/model"
)

type BillingAPI struct {
	c *Client
}

func NewBillingAPI(c *Client) *BillingAPI {
	return &BillingAPI{c: c}
}

func (a *BillingAPI) ListInvoices(ctx context.Context, bearer string, f model.InvoiceFilter) ([]model.Invoice, int64, error) {
	q := url.Values{}
	if f.PatientID != "" {
		q.Set("patientId", f.PatientID)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	q = pageQuery(q, f.Page, f.Limit)

	var list []model.Invoice
	total, err := a.c.getList(ctx, bearer, "/invoices", q, &list, "billing.list")
	return list, total, err
}

func (a *BillingAPI) GetInvoice(ctx context.Context, bearer, id string) (*model.Invoice, error) {
	var inv model.Invoice
	if err := a.c.get(ctx, bearer, "/invoices/"+id, nil, &inv, "billing.get"); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (a *BillingAPI) CreateInvoice(ctx context.Context, bearer string, inv *model.Invoice) (*model.Invoice, error) {
	var created model.Invoice
	if err := a.c.post(ctx, bearer, "/invoices", inv, &created, "billing.create"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *BillingAPI) UpdateInvoice(ctx context.Context, bearer, id string, inv *model.Invoice) (*model.Invoice, error) {
	var updated model.Invoice
	if err := a.c.put(ctx, bearer, "/invoices/"+id, inv, &updated, "billing.update"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RecordPayment 登记收款，余额与账单状态由上游重算
func (a *BillingAPI) RecordPayment(ctx context.Context, bearer, invoiceID string, p *model.Payment) (*model.Invoice, error) {
	var updated model.Invoice
	if err := a.c.post(ctx, bearer, "/invoices/"+invoiceID+"/payments", p, &updated, "billing.payment"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Statement 患者对账单（上游聚合）
func (a *BillingAPI) Statement(ctx context.Context, bearer, patientID string) ([]model.Invoice, int64, error) {
	var list []model.Invoice
	total, err := a.c.getList(ctx, bearer, "/patients/"+patientID+"/statement", nil, &list, "billing.statement")
	return list, total, err
}
