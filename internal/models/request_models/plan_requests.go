package request_models

type CreatePlanRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration"`
}

// UpdatePlanRequest is a merge patch: nil fields are preserved on the
// stored plan, not reset.
type UpdatePlanRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	DurationDays *int     `json:"duration"`
}

type BrowseQuery struct {
	Search string `form:"search"`
}
