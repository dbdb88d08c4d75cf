package models

// SectionStatus marks whether an orchestrated report section computed
// fully or was skipped after a sub-engine failure.
type SectionStatus string

const (
	SectionOK     SectionStatus = "ok"
	SectionFailed SectionStatus = "failed"
)

// ReportSection wraps one engine's output with its status. On failure
// Data is nil and Error carries the sub-engine message; the rest of the
// report is unaffected.
type ReportSection struct {
	Status SectionStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
	Data   interface{}   `json:"data,omitempty"`
}

// HoroscopeReport aggregates every engine's output for one birth.
type HoroscopeReport struct {
	ID       string                   `json:"id"`
	Birth    BirthData                `json:"birth"`
	Chart    *Chart                   `json:"chart"`
	Sections map[string]ReportSection `json:"sections"`
	Partial  bool                     `json:"partial"`
}
