package shipit

import (
	"context"
	"net/http"
)

func balanceGet(name, path string) Request[*BalanceResponse] {
	return Request[*BalanceResponse]{
		Name:   name,
		Method: http.MethodGet,
		Path:   path,
		Decode: decodeInto[BalanceResponse]("BalanceResponse"),
	}
}

func balancePost(name, path string, data map[string]any) Request[*BalanceResponse] {
	return Request[*BalanceResponse]{
		Name:   name,
		Method: http.MethodPost,
		Path:   path,
		Body:   rawBody(data),
		Decode: decodeInto[BalanceResponse]("BalanceResponse"),
	}
}

// GetBalanceCarrierReportsRequest reads the carrier reports of the account.
func GetBalanceCarrierReportsRequest() Request[*BalanceResponse] {
	return balanceGet("GetBalanceCarrierReports", "/v1/balance/carrier-reports")
}

// GetBalanceCarriersRequest gets balances per carrier.
func GetBalanceCarriersRequest() Request[*BalanceResponse] {
	return balanceGet("GetBalanceCarriers", "/v1/balance/carriers")
}

// GetBalanceRequest reads one balance.
func GetBalanceRequest(id string) Request[*BalanceResponse] {
	return balanceGet("GetBalance", pathf("/v1/balance", id))
}

// GetBalanceInvoicePayrowsRequest lists the payrows of an invoice of balance id.
func GetBalanceInvoicePayrowsRequest(id, invoice string) Request[*BalanceResponse] {
	return balanceGet("GetBalanceInvoicePayrows", pathf("/v1/balance", id)+pathf("/invoice", invoice))
}

// CreateBalanceInvoicesRequest queries or creates invoices from data.
func CreateBalanceInvoicesRequest(data map[string]any) Request[*BalanceResponse] {
	return balancePost("CreateBalanceInvoices", "/v1/balance/invoices", data)
}

// GetBalanceInvoiceRequest reads one invoice.
func GetBalanceInvoiceRequest(invoice string) Request[*BalanceResponse] {
	return balanceGet("GetBalanceInvoice", pathf("/v1/balance/invoice", invoice))
}

// GetBalanceAllPayrowsRequest lists every payrow of an invoice.
func GetBalanceAllPayrowsRequest(invoice string) Request[*BalanceResponse] {
	return balanceGet("GetBalanceAllPayrows", pathf("/v1/balance/invoice", invoice)+"/payrows")
}

// CreateBalanceInvoiceBookingDataRequest posts booking data for an invoice.
func CreateBalanceInvoiceBookingDataRequest(invoice string, data map[string]any) Request[*BalanceResponse] {
	return balancePost("CreateBalanceInvoiceBookingData", pathf("/v1/balance/invoice", invoice)+"/booking-data", data)
}

// CreateBalancePayrowsRequest queries payrows.
func CreateBalancePayrowsRequest(data map[string]any) Request[*BalanceResponse] {
	return balancePost("CreateBalancePayrows", "/v1/balance/payrows", data)
}

// GetBalancePayrowRequest reads one payrow.
func GetBalancePayrowRequest(payrow string) Request[*BalanceResponse] {
	return balanceGet("GetBalancePayrow", pathf("/v1/balance/payrow", payrow))
}

// CreateBalanceTransactionsRequest queries transactions.
func CreateBalanceTransactionsRequest(data map[string]any) Request[*BalanceResponse] {
	return balancePost("CreateBalanceTransactions", "/v1/balance/transactions", data)
}

// GetBalanceTransactionRequest reads one transaction.
func GetBalanceTransactionRequest(transaction string) Request[*BalanceResponse] {
	return balanceGet("GetBalanceTransaction", pathf("/v1/balance/transaction", transaction))
}

// GetBalanceUserRequest reads the balance of a user.
func GetBalanceUserRequest(id string) Request[*BalanceResponse] {
	return balanceGet("GetBalanceUser", pathf("/v1/balance/user", id))
}

// CreateBalanceWalletsRequest queries wallets.
func CreateBalanceWalletsRequest(data map[string]any) Request[*BalanceResponse] {
	return balancePost("CreateBalanceWallets", "/v1/balance/wallets", data)
}

// GetBalancePendingInvoicesRequest lists unpaid invoices of a business entity.
func GetBalancePendingInvoicesRequest(businessEntityID string) Request[*BalanceResponse] {
	return balanceGet("GetBalancePendingInvoices", pathf("/v1/balance/pending-invoices", businessEntityID))
}

// CreateBalanceShipmentsRequest queries billed shipments.
func CreateBalanceShipmentsRequest(data map[string]any) Request[*BalanceResponse] {
	return balancePost("CreateBalanceShipments", "/v1/balance/shipments", data)
}

// BalanceResource covers invoicing, payrows, transactions and wallets.
// Every payload is opaque.
type BalanceResource struct {
	c *Connector
}

// CarrierReports returns the carrier reports.
func (r *BalanceResource) CarrierReports(ctx context.Context) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalanceCarrierReportsRequest())
}

// Carriers returns balances grouped by carrier.
func (r *BalanceResource) Carriers(ctx context.Context) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalanceCarriersRequest())
}

// Get returns balance id.
func (r *BalanceResource) Get(ctx context.Context, id string) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalanceRequest(id))
}

// InvoicePayrows returns the payrows of one invoice of balance id.
func (r *BalanceResource) InvoicePayrows(ctx context.Context, id, invoice string) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalanceInvoicePayrowsRequest(id, invoice))
}

// Invoices posts an invoice query.
func (r *BalanceResource) Invoices(ctx context.Context, data map[string]any) (*BalanceResponse, error) {
	return Send(ctx, r.c, CreateBalanceInvoicesRequest(data))
}

// Invoice returns one invoice.
func (r *BalanceResource) Invoice(ctx context.Context, invoice string) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalanceInvoiceRequest(invoice))
}

// AllPayrows returns every payrow of invoice.
func (r *BalanceResource) AllPayrows(ctx context.Context, invoice string) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalanceAllPayrowsRequest(invoice))
}

// InvoiceBookingData attaches booking data to invoice.
func (r *BalanceResource) InvoiceBookingData(ctx context.Context, invoice string, data map[string]any) (*BalanceResponse, error) {
	return Send(ctx, r.c, CreateBalanceInvoiceBookingDataRequest(invoice, data))
}

// Payrows posts a payrow query.
func (r *BalanceResource) Payrows(ctx context.Context, data map[string]any) (*BalanceResponse, error) {
	return Send(ctx, r.c, CreateBalancePayrowsRequest(data))
}

// Payrow returns one payrow.
func (r *BalanceResource) Payrow(ctx context.Context, payrow string) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalancePayrowRequest(payrow))
}

// Transactions posts a transaction query.
func (r *BalanceResource) Transactions(ctx context.Context, data map[string]any) (*BalanceResponse, error) {
	return Send(ctx, r.c, CreateBalanceTransactionsRequest(data))
}

// Transaction returns one transaction.
func (r *BalanceResource) Transaction(ctx context.Context, transaction string) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalanceTransactionRequest(transaction))
}

// User returns the balance of user id.
func (r *BalanceResource) User(ctx context.Context, id string) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalanceUserRequest(id))
}

// Wallets posts a wallet query.
func (r *BalanceResource) Wallets(ctx context.Context, data map[string]any) (*BalanceResponse, error) {
	return Send(ctx, r.c, CreateBalanceWalletsRequest(data))
}

// PendingInvoices lists the open invoices of a business entity.
func (r *BalanceResource) PendingInvoices(ctx context.Context, businessEntityID string) (*BalanceResponse, error) {
	return Send(ctx, r.c, GetBalancePendingInvoicesRequest(businessEntityID))
}

// Shipments posts a billed shipment query.
func (r *BalanceResource) Shipments(ctx context.Context, data map[string]any) (*BalanceResponse, error) {
	return Send(ctx, r.c, CreateBalanceShipmentsRequest(data))
}
