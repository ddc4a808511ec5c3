package unleashed

import (
	"context"
	"time"

	unleasheddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/domain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/unleashedclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type SalesIntegrator interface {
	FetchSalesOrders(ctx context.Context, window domain.DateRange) ([]domain.SalesRecord, error)
	FetchCreditNotes(ctx context.Context, window domain.DateRange) ([]domain.CreditNote, error)
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchCustomers(ctx context.Context) ([]domain.Customer, error)
	FetchSalespersons(ctx context.Context) ([]domain.Salesperson, error)
}

type UnleashedService struct {
	cfg    *config.Config
	Client unleashedclient.Client
}

func New(cfg *config.Config, client unleashedclient.Client) SalesIntegrator {
	return &UnleashedService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *UnleashedService) FetchSalesOrders(ctx context.Context, window domain.DateRange) ([]domain.SalesRecord, error) {
	params := unleashedclient.SalesOrderParams{
		StartDate: window.Start.Format(time.DateOnly),
		EndDate:   window.End.Format(time.DateOnly),
	}

	orders, err := s.Client.GetSalesOrders(ctx, params)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(orders))
	for _, order := range orders {
		records = append(records, toSalesRecord(order))
	}

	return records, nil
}

func (s *UnleashedService) FetchCreditNotes(ctx context.Context, window domain.DateRange) ([]domain.CreditNote, error) {
	params := unleashedclient.CreditNoteParams{
		StartDate: window.Start.Format(time.DateOnly),
		EndDate:   window.End.Format(time.DateOnly),
	}

	notes, err := s.Client.GetCreditNotes(ctx, params)
	if err != nil {
		return nil, err
	}

	creditNotes := make([]domain.CreditNote, 0, len(notes))
	for _, note := range notes {
		creditNotes = append(creditNotes, domain.CreditNote{
			ID:            note.Guid,
			NoteNumber:    note.CreditNoteNumber,
			Date:          note.CreditNoteDate.Time,
			CustomerID:    customerID(note.Customer),
			CustomerName:  note.Customer.CustomerName,
			AmountExclTax: note.SubTotal,
			TaxAmount:     note.TaxTotal,
		})
	}

	return creditNotes, nil
}

func (s *UnleashedService) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.Client.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if product.Obsolete {
			continue
		}

		result = append(result, domain.Product{
			ID:            product.Guid,
			Code:          product.ProductCode,
			Name:          product.ProductDescription,
			PurchasePrice: product.DefaultPurchasePrice,
			SellPrice:     product.DefaultSellPrice,
		})
	}

	return result, nil
}

func (s *UnleashedService) FetchCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.Client.GetCustomers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if customer.Obsolete {
			continue
		}

		result = append(result, domain.Customer{
			ID:   customer.Guid,
			Code: customer.CustomerCode,
			Name: customer.CustomerName,
		})
	}

	return result, nil
}

func (s *UnleashedService) FetchSalespersons(ctx context.Context) ([]domain.Salesperson, error) {
	salespersons, err := s.Client.GetSalespersons(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Salesperson, 0, len(salespersons))
	for _, sp := range salespersons {
		if sp.Obsolete {
			continue
		}

		result = append(result, domain.Salesperson{
			ID:    sp.Guid,
			Name:  sp.FullName,
			Email: sp.Email,
		})
	}

	return result, nil
}

// toSalesRecord converte o pedido da Unleashed para o formato interno.
// Usa a data de conclusão quando presente, senão a data do pedido.
func toSalesRecord(order unleasheddomain.SalesOrder) domain.SalesRecord {
	date := order.CompletedDate.Time
	if date.IsZero() {
		date = order.OrderDate.Time
	}

	record := domain.SalesRecord{
		ID:            order.Guid,
		OrderNumber:   order.OrderNumber,
		Date:          date,
		CustomerID:    customerID(order.Customer),
		CustomerName:  order.Customer.CustomerName,
		AmountExclTax: order.SubTotal,
		TaxAmount:     order.TaxTotal,
	}

	if order.SalesPerson != nil {
		record.SalespersonID = order.SalesPerson.Guid
		record.SalespersonName = order.SalesPerson.FullName
	}

	if len(order.SalesOrderLines) > 0 {
		record.Lines = make([]domain.SaleLine, 0, len(order.SalesOrderLines))
		for _, line := range order.SalesOrderLines {
			record.Lines = append(record.Lines, domain.SaleLine{
				ProductID:   line.Product.Guid,
				ProductCode: line.Product.ProductCode,
				ProductName: line.Product.ProductDescription,
				Quantity:    line.OrderQuantity,
				LineTotal:   line.LineTotal,
			})
		}
	}

	return record
}

func customerID(customer unleasheddomain.OrderCustomer) string {
	if customer.CustomerCode != "" {
		return customer.CustomerCode
	}

	return customer.Guid
}
