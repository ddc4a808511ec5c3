package unleasheddomain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// A API externa mistura dois formatos de data nas respostas: o formato
// .NET "/Date(1419909600000)/" e strings ISO. Date aceita ambos.
type Date struct {
	time.Time
}

var dotNetDatePattern = regexp.MustCompile(`^/Date\((-?\d+)(?:[+-]\d{4})?\)/$`)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	if m := dotNetDatePattern.FindStringSubmatch(raw); m != nil {
		ms, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return fmt.Errorf("data .NET inválida: %q", raw)
		}
		d.Time = time.UnixMilli(ms).UTC()
		return nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}

	return fmt.Errorf("data em formato desconhecido: %q", raw)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}
