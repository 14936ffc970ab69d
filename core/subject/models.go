package subject

// Subject is a taught subject as known by the remote system; absences can
// be browsed per subject on the manage view.
type Subject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
