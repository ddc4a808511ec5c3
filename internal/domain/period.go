package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type PeriodType string

const (
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
)

// Period é uma janela nomeada de datas (mês ou trimestre) usada para
// agrupar registros e para selecionar o período anterior de comparação.
type Period struct {
	Type    PeriodType
	Year    int
	Month   time.Month // usado quando Type == PeriodMonthly
	Quarter int        // 1 a 4, usado quando Type == PeriodQuarterly
}

// DateRange é uma janela fechada de datas, em granularidade de dia (UTC)
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains verifica se a data pertence à janela, ignorando o horário
func (r DateRange) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// CurrentPeriod retorna o período do tipo informado que contém a data de referência
func CurrentPeriod(t PeriodType, now time.Time) Period {
	if t == PeriodQuarterly {
		return Period{
			Type:    PeriodQuarterly,
			Year:    now.Year(),
			Quarter: (int(now.Month())-1)/3 + 1,
		}
	}

	return Period{
		Type:  PeriodMonthly,
		Year:  now.Year(),
		Month: now.Month(),
	}
}

// ParsePeriod interpreta rótulos nos formatos "2025-08" e "2025-Q3"
func ParsePeriod(label string) (Period, error) {
	parts := strings.SplitN(strings.TrimSpace(label), "-", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("período inválido: %q", label)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 2000 || year > 9999 {
		return Period{}, fmt.Errorf("ano inválido no período: %q", label)
	}

	if q, ok := strings.CutPrefix(strings.ToUpper(parts[1]), "Q"); ok {
		quarter, err := strconv.Atoi(q)
		if err != nil || quarter < 1 || quarter > 4 {
			return Period{}, fmt.Errorf("trimestre inválido no período: %q", label)
		}
		return Period{Type: PeriodQuarterly, Year: year, Quarter: quarter}, nil
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("mês inválido no período: %q", label)
	}

	return Period{Type: PeriodMonthly, Year: year, Month: time.Month(month)}, nil
}

// Label retorna o rótulo canônico do período ("2025-08" ou "2025-Q3")
func (p Period) Label() string {
	if p.Type == PeriodQuarterly {
		return fmt.Sprintf("%04d-Q%d", p.Year, p.Quarter)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start retorna o primeiro dia do período
func (p Period) Start() time.Time {
	if p.Type == PeriodQuarterly {
		return time.Date(p.Year, time.Month((p.Quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Prior retorna o período imediatamente anterior
func (p Period) Prior() Period {
	if p.Type == PeriodQuarterly {
		if p.Quarter == 1 {
			return Period{Type: PeriodQuarterly, Year: p.Year - 1, Quarter: 4}
		}
		return Period{Type: PeriodQuarterly, Year: p.Year, Quarter: p.Quarter - 1}
	}

	if p.Month == time.January {
		return Period{Type: PeriodMonthly, Year: p.Year - 1, Month: time.December}
	}
	return Period{Type: PeriodMonthly, Year: p.Year, Month: p.Month - 1}
}

// Window resolve a janela de datas do período. Períodos que contêm a
// data de referência são limitados a ela (mês/trimestre até a data).
func (p Period) Window(now time.Time) DateRange {
	start := p.Start()
	last := p.endExclusive().AddDate(0, 0, -1)

	today := dateOnly(now)
	if today.Before(last) && !today.Before(start) {
		last = today
	}

	return DateRange{Start: start, End: last}
}

// PriorWindow resolve a janela de comparação do período anterior.
// Para meses parciais a janela anterior é recortada para o mesmo dia do
// mês, limitado ao último dia daquele mês; trimestres anteriores são
// sempre completos.
func (p Period) PriorWindow(now time.Time) DateRange {
	prior := p.Prior()
	window := DateRange{
		Start: prior.Start(),
		End:   prior.endExclusive().AddDate(0, 0, -1),
	}

	if p.Type == PeriodQuarterly {
		return window
	}

	day := p.Window(now).End.Day()
	if day < window.End.Day() {
		window.End = time.Date(prior.Year, prior.Month, day, 0, 0, 0, 0, time.UTC)
	}

	return window
}

func (p Period) endExclusive() time.Time {
	if p.Type == PeriodQuarterly {
		return p.Start().AddDate(0, 3, 0)
	}
	return p.Start().AddDate(0, 1, 0)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
