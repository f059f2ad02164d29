package model

const (
	InvoiceDraft   = "draft"
	InvoiceIssued  = "issued"
	InvoicePartial = "partially_paid"
	InvoicePaid    = "paid"
	InvoiceVoid    = "void"
)

// InvoiceItem 账单明细行
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// Invoice 账单（金额计算与状态流转由上游负责）
type Invoice struct {
	ID         string        `json:"id"`
	PatientID  string        `json:"patientId"`
	Items      []InvoiceItem `json:"items"`
	Subtotal   float64       `json:"subtotal"`
	Discount   float64       `json:"discount"`
	Total      float64       `json:"total"`
	AmountPaid float64       `json:"amountPaid"`
	Status     string        `json:"status"`
	DueDate    string        `json:"dueDate"`
	IssuedAt   string        `json:"issuedAt"`
}

// Payment 收款记录
type Payment struct {
	ID        string  `json:"id"`
	InvoiceID string  `json:"invoiceId"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"` // cash | card | transfer | insurance
	Reference string  `json:"reference"`
	PaidAt    string  `json:"paidAt"`
}

type InvoiceFilter struct {
	PatientID string
	Status    string
	Page      int
	Limit     int
}
