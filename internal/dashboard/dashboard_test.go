package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/barbearia-client/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-client/internal/models"
	"github.com/BruksfildServices01/barbearia-client/internal/timezone"
)

func apptAt(id, barberID uint, t time.Time, valor float64) models.Appointment {
	return models.Appointment{
		ID:          id,
		Barbeiro:    &models.Barber{ID: barberID},
		DataHorario: models.NewLocalTime(t),
		ValorTotal:  valor,
		Status:      appointment.StatusConfirmado,
	}
}

func TestForBarber(t *testing.T) {
	loc := timezone.Shop()
	now := time.Date(2030, 5, 20, 9, 0, 0, 0, loc)

	list := []models.Appointment{
		apptAt(1, 7, now, 25),
		apptAt(2, 8, now, 15),
		{ID: 3, DataHorario: models.NewLocalTime(now)}, // sem barbeiro
		apptAt(4, 7, now, 30),
	}

	mine := ForBarber(list, 7)

	require.Len(t, mine, 2)
	assert.Equal(t, uint(1), mine[0].ID)
	assert.Equal(t, uint(4), mine[1].ID)
}

// O recorte de "hoje" compara ano/mês/dia, não faixa de timestamp.
func TestOnDay(t *testing.T) {
	loc := timezone.Shop()
	day := time.Date(2030, 5, 20, 8, 0, 0, 0, loc)

	list := []models.Appointment{
		apptAt(1, 7, time.Date(2030, 5, 20, 0, 0, 0, 0, loc), 25),  // meia-noite conta
		apptAt(2, 7, time.Date(2030, 5, 20, 23, 59, 0, 0, loc), 15), // fim do dia conta
		apptAt(3, 7, time.Date(2030, 5, 21, 0, 0, 0, 0, loc), 30),  // dia seguinte não
		apptAt(4, 7, time.Date(2030, 5, 19, 23, 59, 0, 0, loc), 10), // véspera não
	}

	today := OnDay(list, day)

	require.Len(t, today, 2)
	assert.Equal(t, uint(1), today[0].ID)
	assert.Equal(t, uint(2), today[1].ID)
}

func TestBuildStats(t *testing.T) {
	loc := timezone.Shop()
	now := time.Date(2030, 5, 20, 9, 0, 0, 0, loc)

	pendentes := []models.Appointment{apptAt(1, 7, now, 25)}
	hoje := []models.Appointment{
		apptAt(2, 7, now, 25),
		apptAt(3, 7, now, 15),
	}

	st := BuildStats(pendentes, hoje)

	assert.Equal(t, 1, st.Pendentes)
	assert.Equal(t, 2, st.ConfirmadosHoje)
	assert.Equal(t, 40.0, st.ValorHoje)
}

func TestBuildStats_Empty(t *testing.T) {
	st := BuildStats(nil, nil)
	assert.Zero(t, st.Pendentes)
	assert.Zero(t, st.ConfirmadosHoje)
	assert.Zero(t, st.ValorHoje)
}

func TestExportDay(t *testing.T) {
	loc := timezone.Shop()
	day := time.Date(2030, 5, 20, 8, 0, 0, 0, loc)
	barber := models.Barber{ID: 7, Nome: "João Silva", Login: "joao_silva"}

	appts := []models.Appointment{
		{
			ID:          1,
			Cliente:     &models.Client{NomeCompleto: "Maria Souza"},
			Barbeiro:    &barber,
			Servicos:    []models.Service{{Nome: "Corte Masculino"}, {Nome: "Barba"}},
			DataHorario: models.NewLocalTime(time.Date(2030, 5, 20, 14, 30, 0, 0, loc)),
			ValorTotal:  40,
			Status:      appointment.StatusConfirmado,
		},
	}

	path, err := ExportDay(t.TempDir(), barber, day, appts)
	require.NoError(t, err)
	assert.Contains(t, path, "agenda_joao_silva_2030-05-20.xlsx")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	hora, err := f.GetCellValue("Agenda", "A3")
	require.NoError(t, err)
	assert.Equal(t, "14:30", hora)

	cliente, err := f.GetCellValue("Agenda", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", cliente)

	servicos, err := f.GetCellValue("Agenda", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Corte Masculino, Barba", servicos)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "joao_silva", sanitize(" Joao_Silva "))
	assert.Equal(t, "barbeiro", sanitize(""))
	assert.Equal(t, "a_b", sanitize("a/b"))
}
