package unleasheddomain

// Salesperson é o vendedor como retornado pela API externa
type Salesperson struct {
	Guid     string `json:"Guid"`
	FullName string `json:"FullName"`
	Email    string `json:"Email"`
	Obsolete bool   `json:"Obsolete"`
}
