package roster

import (
	"github.com/turnos-app/turnos-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name       string `json:"name"`
	ShortName  string `json:"short_name"`
	NationalID string `json:"national_id"`
	Role       string `json:"role"`
	Site       string `json:"site"`
	Place      string `json:"place"`
	IsReliever bool   `json:"is_reliever"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID         string `json:"-"`
	Name       string `json:"name"`
	ShortName  string `json:"short_name"`
	NationalID string `json:"national_id"`
	Role       string `json:"role"`
	Site       string `json:"site"`
	Place      string `json:"place"`
	// Color overrides the assigned palette color; blank keeps the current one.
	Color      string `json:"color"`
	IsReliever bool   `json:"is_reliever"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid worker id",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}
	if r.Color != "" && !validator.IsValidHexColor(r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a hex color like #aabbcc",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReorderRequest struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

func (r *ReorderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SourceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "source_id",
			Message: "source_id is required",
		})
	}
	if validator.IsEmpty(r.TargetID) {
		errs = append(errs, validator.ValidationError{
			Field:   "target_id",
			Message: "target_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ShortName  string `json:"short_name,omitempty"`
	NationalID string `json:"national_id,omitempty"`
	Role       string `json:"role"`
	Site       string `json:"site,omitempty"`
	Place      string `json:"place,omitempty"`
	Color      string `json:"color"`
	IsReliever bool   `json:"is_reliever"`
	IsActive   bool   `json:"is_active"`
	Position   int    `json:"position"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func ToWorkerResponse(w Worker, position int) WorkerResponse {
	return WorkerResponse{
		ID:         w.ID,
		Name:       w.Name,
		ShortName:  w.ShortName,
		NationalID: w.NationalID,
		Role:       w.Role,
		Site:       w.Site,
		Place:      w.Place,
		Color:      w.Color,
		IsReliever: w.IsReliever,
		IsActive:   w.IsActive,
		Position:   position,
		CreatedAt:  w.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  w.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToWorkerResponses(workers []Worker) []WorkerResponse {
	out := make([]WorkerResponse, 0, len(workers))
	for i, w := range workers {
		out = append(out, ToWorkerResponse(w, i))
	}
	return out
}
