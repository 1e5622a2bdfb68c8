package checklist

// Item is one entry of a week's operational checklist. IDs are unique within
// the week only.
type Item struct {
	ID      int64
	Label   string
	Checked bool
}

// DefaultItems seeds a week the first time it is viewed. An emptied list is
// never re-seeded.
func DefaultItems() []Item {
	return []Item{
		{ID: 1, Label: "Revisar descansos de la semana"},
		{ID: 2, Label: "Confirmar relevos asignados"},
		{ID: 3, Label: "Publicar el reporte semanal"},
		{ID: 4, Label: "Verificar pedidos de vacaciones"},
	}
}
