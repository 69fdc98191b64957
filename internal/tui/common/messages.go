package common

// StateChangedMsg tells the app that the catalog state moved on
type StateChangedMsg struct{}

// SubmitQueryMsg is sent when the search box is submitted
type SubmitQueryMsg struct {
	Query string
}

// CancelSearchMsg is sent when the search box is dismissed without submitting
type CancelSearchMsg struct{}
