package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Period
		wantErr  bool
	}{
		{
			name:     "mês válido",
			label:    "2025-08",
			expected: Period{Type: PeriodMonthly, Year: 2025, Month: time.August},
		},
		{
			name:     "trimestre válido",
			label:    "2025-Q3",
			expected: Period{Type: PeriodQuarterly, Year: 2025, Quarter: 3},
		},
		{
			name:     "trimestre em minúscula",
			label:    "2024-q1",
			expected: Period{Type: PeriodQuarterly, Year: 2024, Quarter: 1},
		},
		{
			name:    "mês fora do intervalo",
			label:   "2025-13",
			wantErr: true,
		},
		{
			name:    "trimestre fora do intervalo",
			label:   "2025-Q5",
			wantErr: true,
		},
		{
			name:    "rótulo sem separador",
			label:   "202508",
			wantErr: true,
		},
		{
			name:    "rótulo vazio",
			label:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ParsePeriod(tt.label)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, period)
		})
	}
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "2025-08", Period{Type: PeriodMonthly, Year: 2025, Month: time.August}.Label())
	assert.Equal(t, "2025-01", Period{Type: PeriodMonthly, Year: 2025, Month: time.January}.Label())
	assert.Equal(t, "2024-Q4", Period{Type: PeriodQuarterly, Year: 2024, Quarter: 4}.Label())
}

func TestCurrentPeriod(t *testing.T) {
	now := date(2025, time.August, 23)

	month := CurrentPeriod(PeriodMonthly, now)
	assert.Equal(t, Period{Type: PeriodMonthly, Year: 2025, Month: time.August}, month)

	quarter := CurrentPeriod(PeriodQuarterly, now)
	assert.Equal(t, Period{Type: PeriodQuarterly, Year: 2025, Quarter: 3}, quarter)
}

func TestPeriodWindow(t *testing.T) {
	now := date(2025, time.August, 23)

	tests := []struct {
		name          string
		period        Period
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "mês corrente limitado à data de referência",
			period:        Period{Type: PeriodMonthly, Year: 2025, Month: time.August},
			expectedStart: date(2025, time.August, 1),
			expectedEnd:   date(2025, time.August, 23),
		},
		{
			name:          "mês passado usa a janela completa",
			period:        Period{Type: PeriodMonthly, Year: 2025, Month: time.July},
			expectedStart: date(2025, time.July, 1),
			expectedEnd:   date(2025, time.July, 31),
		},
		{
			name:          "trimestre corrente limitado à data de referência",
			period:        Period{Type: PeriodQuarterly, Year: 2025, Quarter: 3},
			expectedStart: date(2025, time.July, 1),
			expectedEnd:   date(2025, time.August, 23),
		},
		{
			name:          "trimestre passado usa a janela completa",
			period:        Period{Type: PeriodQuarterly, Year: 2025, Quarter: 1},
			expectedStart: date(2025, time.January, 1),
			expectedEnd:   date(2025, time.March, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := tt.period.Window(now)
			assert.Equal(t, tt.expectedStart, window.Start)
			assert.Equal(t, tt.expectedEnd, window.End)
		})
	}
}

func TestPeriodPriorWindow(t *testing.T) {
	tests := []struct {
		name          string
		period        Period
		now           time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "mês parcial recorta o mês anterior para o mesmo dia",
			period:        Period{Type: PeriodMonthly, Year: 2025, Month: time.August},
			now:           date(2025, time.August, 23),
			expectedStart: date(2025, time.July, 1),
			expectedEnd:   date(2025, time.July, 23),
		},
		{
			name:          "mês completo compara com o mês anterior completo",
			period:        Period{Type: PeriodMonthly, Year: 2025, Month: time.July},
			now:           date(2025, time.August, 23),
			expectedStart: date(2025, time.June, 1),
			expectedEnd:   date(2025, time.June, 30),
		},
		{
			name:          "dia maior que o mês anterior é limitado ao último dia",
			period:        Period{Type: PeriodMonthly, Year: 2025, Month: time.March},
			now:           date(2025, time.March, 31),
			expectedStart: date(2025, time.February, 1),
			expectedEnd:   date(2025, time.February, 28),
		},
		{
			name:          "virada de ano volta para dezembro",
			period:        Period{Type: PeriodMonthly, Year: 2025, Month: time.January},
			now:           date(2025, time.January, 15),
			expectedStart: date(2024, time.December, 1),
			expectedEnd:   date(2024, time.December, 15),
		},
		{
			name:          "trimestre compara com o trimestre anterior completo",
			period:        Period{Type: PeriodQuarterly, Year: 2025, Quarter: 3},
			now:           date(2025, time.August, 23),
			expectedStart: date(2025, time.April, 1),
			expectedEnd:   date(2025, time.June, 30),
		},
		{
			name:          "primeiro trimestre compara com o último do ano anterior",
			period:        Period{Type: PeriodQuarterly, Year: 2025, Quarter: 1},
			now:           date(2025, time.February, 10),
			expectedStart: date(2024, time.October, 1),
			expectedEnd:   date(2024, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := tt.period.PriorWindow(tt.now)
			assert.Equal(t, tt.expectedStart, window.Start)
			assert.Equal(t, tt.expectedEnd, window.End)
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	window := DateRange{Start: date(2025, time.August, 1), End: date(2025, time.August, 23)}

	assert.True(t, window.Contains(date(2025, time.August, 1)))
	assert.True(t, window.Contains(date(2025, time.August, 23)))
	assert.True(t, window.Contains(time.Date(2025, time.August, 23, 18, 30, 0, 0, time.UTC)))
	assert.False(t, window.Contains(date(2025, time.July, 31)))
	assert.False(t, window.Contains(date(2025, time.August, 24)))
}

func TestBuildAvailablePeriods(t *testing.T) {
	now := date(2025, time.August, 23)

	periods := BuildAvailablePeriods(now)

	require.Len(t, periods.Months, 12)
	require.Len(t, periods.Quarters, 4)
	assert.Equal(t, "2025-08", periods.Months[0])
	assert.Equal(t, "2024-09", periods.Months[11])
	assert.Equal(t, "2025-Q3", periods.Quarters[0])
	assert.Equal(t, "2024-Q4", periods.Quarters[3])
}
