package unleashedclient

import (
	"context"
	"net/url"
	"strconv"

	unleasheddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/domain"
)

type CreditNoteParams struct {
	StartDate string // yyyy-mm-dd
	EndDate   string // yyyy-mm-dd
}

type creditNotesPage struct {
	Pagination unleasheddomain.Pagination   `json:"Pagination"`
	Items      []unleasheddomain.CreditNote `json:"Items"`
}

// GetCreditNotes busca as notas de crédito emitidas na janela de datas,
// percorrendo todas as páginas da listagem
func (c *UnleashedClient) GetCreditNotes(ctx context.Context, params CreditNoteParams) ([]unleasheddomain.CreditNote, error) {
	notes := make([]unleasheddomain.CreditNote, 0)
	page := 1

	for {
		query := url.Values{}
		query.Set("startDate", params.StartDate)
		query.Set("endDate", params.EndDate)
		query.Set("pageSize", strconv.Itoa(c.pageSize))
		query.Set("page", strconv.Itoa(page))

		var envelope creditNotesPage
		if err := c.getJSON(ctx, "/CreditNotes", query, &envelope); err != nil {
			return nil, err
		}

		if len(envelope.Items) == 0 {
			break
		}

		notes = append(notes, envelope.Items...)

		if page >= envelope.Pagination.NumberOfPages {
			break
		}
		page++
	}

	return notes, nil
}
