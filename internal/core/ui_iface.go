package core

// Navigator moves the presentation layer to another view.
type Navigator interface {
	Navigate(path string, replace bool)
}

// Alerter shows a message to the user.
type Alerter interface {
	Alert(msg string)
}
