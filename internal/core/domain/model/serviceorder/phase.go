package serviceorder

// Phase groups three consecutive pipeline statuses for display and filtering.
// Phases carry presentation metadata only; an order's phase is always derived
// from its status, never persisted on its own.
type Phase int

const (
	// PhaseUnknown is the phase of an invalid status.
	PhaseUnknown Phase = iota

	// PhaseCommercial covers request_received through quote_accepted.
	PhaseCommercial

	// PhaseOperational covers technician_assigned through additional_authorization.
	PhaseOperational

	// PhaseClosing covers service_completed through documentation_delivered.
	PhaseClosing

	// PhaseAdministrative covers survey_sent through paid.
	PhaseAdministrative
)

// getPhaseLabels returns display labels for each phase.
func getPhaseLabels() map[Phase]string {
	return map[Phase]string{
		PhaseUnknown:        "Unknown",
		PhaseCommercial:     "Commercial",
		PhaseOperational:    "Operational",
		PhaseClosing:        "Closing",
		PhaseAdministrative: "Administrative",
	}
}

// getPhaseColors returns the accent color used when rendering each phase.
func getPhaseColors() map[Phase]string {
	return map[Phase]string{
		PhaseUnknown:        "gray",
		PhaseCommercial:     "blue",
		PhaseOperational:    "amber",
		PhaseClosing:        "green",
		PhaseAdministrative: "purple",
	}
}

// String returns the display label of the phase.
func (p Phase) String() string {
	if label, ok := getPhaseLabels()[p]; ok {
		return label
	}
	return "Unknown"
}

// Color returns the accent color associated with the phase.
func (p Phase) Color() string {
	if color, ok := getPhaseColors()[p]; ok {
		return color
	}
	return "gray"
}

// Statuses returns the pipeline statuses belonging to the phase, in order.
func (p Phase) Statuses() []Status {
	var members []Status
	for _, status := range pipeline() {
		if status.Phase() == p {
			members = append(members, status)
		}
	}
	return members
}
