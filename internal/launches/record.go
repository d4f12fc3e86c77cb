package launches

// Column names of the launch records CSV. They are an external contract.
const (
	ColumnLaunchSite     = "Launch Site"
	ColumnPayloadMass    = "Payload Mass (kg)"
	ColumnClass          = "class"
	ColumnBoosterVersion = "Booster Version Category"
)

// AllSites selects every launch site.
const AllSites = "ALL"

// Outcome classes.
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// LaunchRecord is one launch attempt.
type LaunchRecord struct {
	Site                   string  `json:"launchSite"`
	PayloadMassKg          float64 `json:"payloadMassKg"`
	Class                  int     `json:"class"`
	BoosterVersionCategory string  `json:"boosterVersionCategory"`
}

// Succeeded reports whether the launch outcome class is success.
func (r LaunchRecord) Succeeded() bool {
	return r.Class == ClassSuccess
}
