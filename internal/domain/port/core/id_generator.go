package core

// IDGenerator produces unique identifiers for trades and reports
type IDGenerator interface {
	NewID() string
}
