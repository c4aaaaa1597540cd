package timezone

import (
	"os"
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

// BARBEARIA_TZ sobrescreve o fuso da barbearia; o backend serializa horários locais a ele.
const envKey = "BARBEARIA_TZ"

var (
	once sync.Once
	loc  *time.Location
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if l, err := time.LoadLocation(tz); err == nil {
			return l
		}
	}

	l, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return l
}

// Shop resolve o fuso oficial da barbearia uma única vez.
func Shop() *time.Location {
	once.Do(func() {
		loc = Location(os.Getenv(envKey))
	})
	return loc
}

func Now() time.Time {
	return time.Now().In(Shop())
}
