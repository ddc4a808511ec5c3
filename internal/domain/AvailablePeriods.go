package domain

import "time"

// AvailablePeriods representa os períodos selecionáveis no dashboard
type AvailablePeriods struct {
	Months   []string `json:"months"`   // últimos 12 meses no formato yyyy-mm
	Quarters []string `json:"quarters"` // últimos 4 trimestres no formato yyyy-Qn
}

// BuildAvailablePeriods monta as listas de períodos a partir da data de referência
func BuildAvailablePeriods(now time.Time) *AvailablePeriods {
	months := make([]string, 0, 12)
	month := CurrentPeriod(PeriodMonthly, now)
	for i := 0; i < 12; i++ {
		months = append(months, month.Label())
		month = month.Prior()
	}

	quarters := make([]string, 0, 4)
	quarter := CurrentPeriod(PeriodQuarterly, now)
	for i := 0; i < 4; i++ {
		quarters = append(quarters, quarter.Label())
		quarter = quarter.Prior()
	}

	return &AvailablePeriods{
		Months:   months,
		Quarters: quarters,
	}
}
