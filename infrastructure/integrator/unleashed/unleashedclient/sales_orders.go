package unleashedclient

import (
	"context"
	"net/url"
	"strconv"

	unleasheddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/domain"
)

type SalesOrderParams struct {
	StartDate string // yyyy-mm-dd
	EndDate   string // yyyy-mm-dd
}

type salesOrdersPage struct {
	Pagination unleasheddomain.Pagination   `json:"Pagination"`
	Items      []unleasheddomain.SalesOrder `json:"Items"`
}

// GetSalesOrders busca os pedidos concluídos na janela de datas,
// percorrendo todas as páginas da listagem
func (c *UnleashedClient) GetSalesOrders(ctx context.Context, params SalesOrderParams) ([]unleasheddomain.SalesOrder, error) {
	orders := make([]unleasheddomain.SalesOrder, 0)
	page := 1

	for {
		query := url.Values{}
		query.Set("completedAfter", params.StartDate)
		query.Set("completedBefore", params.EndDate)
		query.Set("orderStatus", "Completed")
		query.Set("pageSize", strconv.Itoa(c.pageSize))
		query.Set("page", strconv.Itoa(page))

		var envelope salesOrdersPage
		if err := c.getJSON(ctx, "/SalesOrders", query, &envelope); err != nil {
			return nil, err
		}

		if len(envelope.Items) == 0 {
			break
		}

		orders = append(orders, envelope.Items...)

		if page >= envelope.Pagination.NumberOfPages {
			break
		}
		page++
	}

	return orders, nil
}
