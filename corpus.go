package lexilla

// Case is one classification regression entry: a raw line of terminal
// output and the outcome it must keep producing. Want holds a style name
// as understood by ParseStyle; ValueStart mirrors the classifier's second
// result (-1 when the line has no location/message split).
type Case struct {
	Name       string `json:"name"`
	Text       string `json:"text"`
	Want       string `json:"want"`
	ValueStart int    `json:"value_start"`
}

// CaseLoader loads regression cases from a corpus file.
type CaseLoader interface {
	Load(path string) ([]Case, error)
}

// CaseSaver writes a complete corpus file.
type CaseSaver interface {
	Save(path string, cases []Case) error
}
