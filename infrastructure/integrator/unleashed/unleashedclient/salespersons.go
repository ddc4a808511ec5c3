package unleashedclient

import (
	"context"
	"net/url"
	"strconv"

	unleasheddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/domain"
)

type salespersonsPage struct {
	Pagination unleasheddomain.Pagination    `json:"Pagination"`
	Items      []unleasheddomain.Salesperson `json:"Items"`
}

// GetSalespersons busca a lista de vendedores cadastrados na Unleashed
func (c *UnleashedClient) GetSalespersons(ctx context.Context) ([]unleasheddomain.Salesperson, error) {
	salespersons := make([]unleasheddomain.Salesperson, 0)
	page := 1

	for {
		query := url.Values{}
		query.Set("pageSize", strconv.Itoa(c.pageSize))
		query.Set("page", strconv.Itoa(page))

		var envelope salespersonsPage
		if err := c.getJSON(ctx, "/SalesPersons", query, &envelope); err != nil {
			return nil, err
		}

		if len(envelope.Items) == 0 {
			break
		}

		salespersons = append(salespersons, envelope.Items...)

		if page >= envelope.Pagination.NumberOfPages {
			break
		}
		page++
	}

	return salespersons, nil
}
