package careplan

import "time"

const DateLayout = "2006-01-02"

// CivilDate descarta la hora: devuelve la medianoche UTC del día calendario de t.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addWeeks(t time.Time, weeks int) time.Time {
	return t.AddDate(0, 0, 7*weeks)
}

// dayNumber convierte una fecha civil en un entero de días (clave del mapa de conteo).
func dayNumber(t time.Time) int64 {
	return CivilDate(t).Unix() / 86400
}

// isAfter compara una fecha civil contra el instante de referencia completo.
func isAfter(date, ref time.Time) bool {
	return date.After(ref)
}
