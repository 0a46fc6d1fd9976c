package animals

import "time"

// Administered es un ítem preventivo ya aplicado al animal.
// Priority es opcional: se guarda tal como lo informó quien lo registró.
type Administered struct {
	Name           string
	Priority       string
	AdministeredAt *time.Time
}

// Animal es el registro que mantiene el store externo de animales.
// El motor de calendario solo lee un snapshot (ver Service.Profile).
type Animal struct {
	ID string

	Name    string
	Species string // dog, cat, rabbit, fish, ...

	BirthDate *time.Time

	Administered []Administered

	CreatedAt time.Time
	UpdatedAt time.Time
}
