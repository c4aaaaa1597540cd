package dashboard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/barbearia-client/internal/models"
)

const exportSheet = "Agenda"

// ExportDay grava a agenda confirmada do dia em um arquivo .xlsx
// e retorna o caminho gerado.
func ExportDay(dir string, barber models.Barber, day time.Time, appointments []models.Appointment) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: criando diretório: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return "", fmt.Errorf("export: criando planilha: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(exportSheet, "A1",
		fmt.Sprintf("Agenda de %s — %s", barber.Nome, day.Format("02/01/2006")))

	headers := []string{"Horário", "Cliente", "Serviços", "Valor", "Status"}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 2)
		f.SetCellValue(exportSheet, cell, h)
		if err == nil {
			f.SetCellStyle(exportSheet, cell, cell, headerStyle)
		}
	}

	row := 3
	for _, ap := range appointments {
		clientName := ""
		if ap.Cliente != nil {
			clientName = ap.Cliente.NomeCompleto
		}

		values := []any{
			ap.DataHorario.Format("15:04"),
			clientName,
			strings.Join(ap.ServiceNames(), ", "),
			ap.ValorTotal,
			ap.Status.Label(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(exportSheet, cell, v)
		}
		row++
	}

	name := fmt.Sprintf("agenda_%s_%s.xlsx", sanitize(barber.Login), day.Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("export: salvando arquivo: %w", err)
	}
	return path, nil
}

func sanitize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "barbeiro"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
