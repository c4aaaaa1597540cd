package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbearia-client/internal/timezone"
)

// Layout sem fuso usado pelo backend (LocalDateTime do Java).
const LocalTimeLayout = "2006-01-02T15:04:05"

// LocalTime decodifica horários sem fuso no fuso da barbearia.
// Aceita também RFC 3339 completo, caso o backend passe a enviá-lo.
type LocalTime struct {
	time.Time
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t.In(timezone.Shop())}
}

func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		lt.Time = time.Time{}
		return nil
	}

	if t, err := time.ParseInLocation(LocalTimeLayout, s, timezone.Shop()); err == nil {
		lt.Time = t
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("horário inválido %q: %w", s, err)
	}
	lt.Time = t.In(timezone.Shop())
	return nil
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	if lt.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + lt.In(timezone.Shop()).Format(LocalTimeLayout) + `"`), nil
}
