package service

// AlertSink defines the interface for delivering immediate operator alerts,
// such as desktop toasts. Delivery is best-effort; the persisted notification
// trail is the source of truth.
type AlertSink interface {
	// Notify shows a (title, message) alert to the operator.
	Notify(title, message string) error
}
