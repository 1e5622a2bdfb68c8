package checklist

import (
	"github.com/turnos-app/turnos-backend-go/internal/pkg/validator"
)

type AddItemRequest struct {
	WeekID string `json:"-"`
	Label  string `json:"label"`
}

func (r *AddItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekID); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_id",
			Message: "week_id must be a YYYY-MM-DD date",
		})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ItemResponse struct {
	ID      int64  `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

type WeekChecklistResponse struct {
	WeekID     string         `json:"week_id"`
	Items      []ItemResponse `json:"items"`
	Completion int            `json:"completion"`
}

func ToWeekChecklistResponse(weekID string, items []Item) WeekChecklistResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemResponse{ID: it.ID, Label: it.Label, Checked: it.Checked})
	}
	return WeekChecklistResponse{
		WeekID:     weekID,
		Items:      out,
		Completion: Completion(items),
	}
}
