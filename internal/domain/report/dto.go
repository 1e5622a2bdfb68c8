package report

import (
	"github.com/turnos-app/turnos-backend-go/internal/pkg/validator"
)

// WeekReportRequest carries the reference day plus per-call option overrides.
// Nil pointers keep the baseline from DefaultOptions.
type WeekReportRequest struct {
	Day              string `json:"-"`
	ShowHeader       *bool  `json:"show_header"`
	ShowDays         *bool  `json:"show_days"`
	ShowLocation     *bool  `json:"show_location"`
	ShowReliever     *bool  `json:"show_reliever"`
	ShowShiftSummary *bool  `json:"show_shift_summary"`
	UseShortName     *bool  `json:"use_short_name"`
}

func (r *WeekReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Resolve merges the overrides onto the baseline options.
func (r *WeekReportRequest) Resolve() Options {
	opts := DefaultOptions()
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&opts.ShowHeader, r.ShowHeader)
	apply(&opts.ShowDays, r.ShowDays)
	apply(&opts.ShowLocation, r.ShowLocation)
	apply(&opts.ShowReliever, r.ShowReliever)
	apply(&opts.ShowShiftSummary, r.ShowShiftSummary)
	apply(&opts.UseShortName, r.UseShortName)
	return opts
}

type WeekReportResponse struct {
	WeekID string `json:"week_id"`
	Text   string `json:"text"`
}
