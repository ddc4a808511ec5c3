package unleashedclient

import (
	"context"
	"net/url"
	"strconv"

	unleasheddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/domain"
)

type productsPage struct {
	Pagination unleasheddomain.Pagination `json:"Pagination"`
	Items      []unleasheddomain.Product  `json:"Items"`
}

// GetProducts busca o catálogo completo de produtos
func (c *UnleashedClient) GetProducts(ctx context.Context) ([]unleasheddomain.Product, error) {
	products := make([]unleasheddomain.Product, 0)
	page := 1

	for {
		query := url.Values{}
		query.Set("pageSize", strconv.Itoa(c.pageSize))
		query.Set("page", strconv.Itoa(page))

		var envelope productsPage
		if err := c.getJSON(ctx, "/Products", query, &envelope); err != nil {
			return nil, err
		}

		if len(envelope.Items) == 0 {
			break
		}

		products = append(products, envelope.Items...)

		if page >= envelope.Pagination.NumberOfPages {
			break
		}
		page++
	}

	return products, nil
}
