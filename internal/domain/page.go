package domain

import "time"

type PageState string

const (
	PageIdle    PageState = "idle"
	PageLoading PageState = "loading"
	PageSuccess PageState = "success"
	PageError   PageState = "error"
)

// PageStatus is a read-only snapshot of the page around the container.
type PageStatus struct {
	State     PageState  `json:"state"`
	Loading   bool       `json:"loading"`
	Failed    bool       `json:"failed"`
	Cards     int        `json:"cards"`
	ErrorKind string     `json:"error_kind,omitempty"`
	LoadedAt  *time.Time `json:"loaded_at,omitempty"`
}
