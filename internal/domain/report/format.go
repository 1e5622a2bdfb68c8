package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/turnos-app/turnos-backend-go/internal/domain/checklist"
	"github.com/turnos-app/turnos-backend-go/internal/domain/shift"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/dateutil"
)

// The report is shared over chat apps, so everything is plain text in the
// operation's language.

var weekdayNames = [7]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

var monthNames = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var summaryTitles = map[shift.ShiftType]string{
	shift.TypeMorning:   "Mañana",
	shift.TypeAfternoon: "Tarde",
	shift.TypeNight:     "Noche",
}

const summaryLeadIn = "Turnos de la semana:"

// Format renders the aggregated week into the shareable text block. Section
// order is fixed: header, rest lines per day, shift summary, checklist
// completion. Only the toggles in opts vary the output.
func Format(view shift.WeekView, window dateutil.WeekWindow, opts Options, defaultSite string, items []checklist.Item) string {
	var b strings.Builder

	if opts.ShowHeader {
		b.WriteString(headerLine(window))
		b.WriteString("\n")
	}

	for i, dv := range view.Days {
		for _, entry := range dv.Resting {
			b.WriteString(restLine(i, entry, opts, defaultSite))
		}
	}

	if opts.ShowShiftSummary && len(view.Summary) > 0 {
		b.WriteString("\n")
		b.WriteString(summaryLeadIn)
		b.WriteString("\n")
		for _, st := range shift.WorkingTypes {
			rows := view.Summary[st]
			if len(rows) == 0 {
				continue
			}
			b.WriteString("\n")
			b.WriteString(summaryTitles[st])
			b.WriteString(":\n")
			for _, row := range rows {
				name := row.Worker.DisplayName(opts.UseShortName)
				b.WriteString(fmt.Sprintf("%s: %s\n", name, strings.Join(row.Places, ", ")))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Checklist semanal: %d%% completado\n", checklist.Completion(items)))

	return b.String()
}

// headerLine is the date-range title, e.g. "Descansos del 12 al 18 de mayo".
// A week spanning two months names both.
func headerLine(window dateutil.WeekWindow) string {
	start := window.Start()
	end := window.End()

	if start.Month() == end.Month() {
		return fmt.Sprintf("Descansos del %d al %d de %s\n", start.Day(), end.Day(), monthName(start))
	}
	return fmt.Sprintf("Descansos del %d de %s al %d de %s\n",
		start.Day(), monthName(start), end.Day(), monthName(end))
}

func monthName(t time.Time) string {
	return monthNames[int(t.Month())-1]
}

func restLine(dayIdx int, entry shift.RestEntry, opts Options, defaultSite string) string {
	var b strings.Builder

	if opts.ShowDays {
		b.WriteString(weekdayNames[dayIdx])
	} else {
		b.WriteString("•")
	}
	b.WriteString(" ")
	b.WriteString(entry.Worker.DisplayName(opts.UseShortName))
	b.WriteString(" ")

	if opts.ShowLocation && entry.Worker.Site != "" && entry.Worker.Site != defaultSite {
		b.WriteString("(" + entry.Worker.Site + ") ")
	}
	if opts.ShowReliever && entry.Reliever != nil {
		b.WriteString("[Cubre: " + entry.Reliever.DisplayName(opts.UseShortName) + "] ")
	}

	b.WriteString("\n")
	return b.String()
}
