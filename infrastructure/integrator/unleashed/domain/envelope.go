package unleasheddomain

// Pagination é o bloco de paginação presente em todas as listagens da
// API externa
type Pagination struct {
	NumberOfItems int `json:"NumberOfItems"`
	PageSize      int `json:"PageSize"`
	PageNumber    int `json:"PageNumber"`
	NumberOfPages int `json:"NumberOfPages"`
}
