package catalog

type ResourceRequest struct {
	Type      string `json:"type" validate:"required,oneof=AXE_BAY DUCKPIN_LANE PARTY_AREA"`
	Name      string `json:"name" validate:"required,max=100"`
	SortOrder int    `json:"sortOrder" validate:"gte=0"`
	Active    *bool  `json:"active"`
}

type ActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// BlackoutRequest closes a date for one activity or for ALL. Without times the whole day is
// closed; a missing end time closes the rest of the day.
type BlackoutRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"omitempty,datetime=15:04"`
	Scope     string `json:"scope" validate:"required"`
	Reason    string `json:"reason" validate:"max=200"`
}

type BufferRequest struct {
	Scope         string `json:"scope" validate:"required"`
	BeforeMinutes int    `json:"beforeMinutes" validate:"gte=0,lte=240"`
	AfterMinutes  int    `json:"afterMinutes" validate:"gte=0,lte=240"`
	Active        *bool  `json:"active"`
}
