package unleasheddomain

// Customer é o cliente como retornado pela API externa
type Customer struct {
	Guid         string `json:"Guid"`
	CustomerCode string `json:"CustomerCode"`
	CustomerName string `json:"CustomerName"`
	Obsolete     bool   `json:"Obsolete"`
}
