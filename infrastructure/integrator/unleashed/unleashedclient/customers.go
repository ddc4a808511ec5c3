package unleashedclient

import (
	"context"
	"net/url"
	"strconv"

	unleasheddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/domain"
)

type customersPage struct {
	Pagination unleasheddomain.Pagination `json:"Pagination"`
	Items      []unleasheddomain.Customer `json:"Items"`
}

// GetCustomers busca a lista completa de clientes cadastrados
func (c *UnleashedClient) GetCustomers(ctx context.Context) ([]unleasheddomain.Customer, error) {
	customers := make([]unleasheddomain.Customer, 0)
	page := 1

	for {
		query := url.Values{}
		query.Set("pageSize", strconv.Itoa(c.pageSize))
		query.Set("page", strconv.Itoa(page))

		var envelope customersPage
		if err := c.getJSON(ctx, "/Customers", query, &envelope); err != nil {
			return nil, err
		}

		if len(envelope.Items) == 0 {
			break
		}

		customers = append(customers, envelope.Items...)

		if page >= envelope.Pagination.NumberOfPages {
			break
		}
		page++
	}

	return customers, nil
}
