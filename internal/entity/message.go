package entity

// Message is a composed notification bound to its chat destination.
// Built once per run and consumed exactly once by a delivery adapter.
type Message struct {
	Text   string
	ChatID int64
}
