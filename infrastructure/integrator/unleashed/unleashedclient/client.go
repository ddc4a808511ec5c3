package unleashedclient

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	unleasheddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultPageSize          = 200
	defaultRequestsPerSecond = 4
)

type Client interface {
	GetSalesOrders(ctx context.Context, params SalesOrderParams) ([]unleasheddomain.SalesOrder, error)
	GetCreditNotes(ctx context.Context, params CreditNoteParams) ([]unleasheddomain.CreditNote, error)
	GetProducts(ctx context.Context) ([]unleasheddomain.Product, error)
	GetCustomers(ctx context.Context) ([]unleasheddomain.Customer, error)
	GetSalespersons(ctx context.Context) ([]unleasheddomain.Salesperson, error)
}

type UnleashedClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiID      string
	apiKey     string
	pageSize   int
}

func NewClient(cfg *config.Config) Client {
	pageSize := cfg.Unleashed.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	rps := cfg.Unleashed.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}

	return &UnleashedClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// A API externa limita requisições por minuto; o limiter espaça
		// as chamadas das buscas paginadas
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		baseURL:  cfg.Unleashed.BaseURL,
		apiID:    cfg.Unleashed.APIID,
		apiKey:   cfg.Unleashed.APIKey,
		pageSize: pageSize,
	}
}

// signQuery gera a assinatura HMAC-SHA256 da query string codificada,
// em base64. A assinatura cobre somente a query string, sem o "?";
// requisições sem parâmetros assinam a string vazia.
func (c *UnleashedClient) signQuery(rawQuery string) string {
	mac := hmac.New(sha256.New, []byte(c.apiKey))
	mac.Write([]byte(rawQuery))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// getJSON executa um GET autenticado na API externa e decodifica a
// resposta JSON em out
func (c *UnleashedClient) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	// Construir a URL da requisição
	endpointURL, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpointURL.Path = path.Join(endpointURL.Path, endpoint)

	rawQuery := query.Encode()
	endpointURL.RawQuery = rawQuery

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-auth-id", c.apiID)
	req.Header.Set("api-auth-signature", c.signQuery(rawQuery))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteUnavailableError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthenticationFailedError{StatusCode: resp.StatusCode}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &RemoteUnavailableError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("requisição falhou com status: %s", resp.Status),
		}
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
