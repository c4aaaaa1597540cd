package views

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbearia-client/internal/timezone"
)

// --------------------------------------------------
// Formatação de exibição (pt-BR)
// --------------------------------------------------

// FormatDuration converte minutos para "Nh Mmin" a partir de uma hora.
func FormatDuration(minutos int) string {
	if minutos < 60 {
		return fmt.Sprintf("%d min", minutos)
	}

	horas := minutos / 60
	resto := minutos % 60
	if resto == 0 {
		return fmt.Sprintf("%dh", horas)
	}
	return fmt.Sprintf("%dh %dmin", horas, resto)
}

func FormatPrice(valor float64) string {
	return fmt.Sprintf("R$ %.2f", valor)
}

func FormatDateTime(t time.Time) string {
	return t.In(timezone.Shop()).Format("02/01/2006 15:04")
}

func FormatTime(t time.Time) string {
	return t.In(timezone.Shop()).Format("15:04")
}

// ParseDateTime aceita o formato de exibição (02/01/2006 15:04) e o
// formato ISO de digitação (2006-01-02 15:04), sempre no fuso da barbearia.
func ParseDateTime(s string) (time.Time, error) {
	layouts := []string{"02/01/2006 15:04", "2006-01-02 15:04"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, timezone.Shop()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data/hora inválida %q (use DD/MM/AAAA HH:MM)", s)
}
