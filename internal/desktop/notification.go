package desktop

import "time"

// Urgency levels matching the freedesktop notification spec.
type Urgency int

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// String returns the human-readable name of the urgency level.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyNormal:
		return "normal"
	case UrgencyCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Action is one actionable button on a notification. ID is a short opaque
// token the caller uses to disambiguate which action the user invoked; Title
// is the label shown to the user. IDs must be unique within one notification.
type Action struct {
	ID    string
	Title string
}

// Notification is an immutable description of a notification, built once via
// NotificationBuilder and never mutated after dispatch. It carries no
// platform knowledge; backends translate it into their native representation.
type Notification struct {
	title      string
	body       string
	urgency    Urgency
	timeout    time.Duration
	hasTimeout bool
	actions    []Action
}

// Title returns the notification summary. Never empty for built values.
func (n *Notification) Title() string { return n.title }

// Body returns the notification body, possibly empty.
func (n *Notification) Body() string { return n.body }

// Urgency returns the urgency level; defaults to UrgencyNormal.
func (n *Notification) Urgency() Urgency { return n.urgency }

// Timeout returns the requested display duration. ok is false when the caller
// left the timeout unset, meaning the platform default applies.
func (n *Notification) Timeout() (d time.Duration, ok bool) {
	return n.timeout, n.hasTimeout
}

// Actions returns the actions in insertion order. Backends that render
// actions as buttons preserve this order. The returned slice is a copy.
func (n *Notification) Actions() []Action {
	out := make([]Action, len(n.actions))
	copy(out, n.actions)
	return out
}

// NotificationBuilder accumulates notification attributes. Scalar setters are
// last-write-wins; Action appends. Build performs no I/O and never fails.
type NotificationBuilder struct {
	n Notification
}

// NewNotification starts a builder for a notification with the given title.
// The title is required and must be non-empty.
func NewNotification(title string) *NotificationBuilder {
	return &NotificationBuilder{n: Notification{
		title:   title,
		urgency: UrgencyNormal,
	}}
}

// Body sets the notification body.
func (b *NotificationBuilder) Body(body string) *NotificationBuilder {
	b.n.body = body
	return b
}

// Urgency sets the urgency level.
func (b *NotificationBuilder) Urgency(u Urgency) *NotificationBuilder {
	b.n.urgency = u
	return b
}

// Timeout sets the requested display duration. Unset means platform default.
func (b *NotificationBuilder) Timeout(d time.Duration) *NotificationBuilder {
	b.n.timeout = d
	b.n.hasTimeout = true
	return b
}

// Action appends an action button with the given id and label.
func (b *NotificationBuilder) Action(id, title string) *NotificationBuilder {
	b.n.actions = append(b.n.actions, Action{ID: id, Title: title})
	return b
}

// Build returns the immutable notification value.
func (b *NotificationBuilder) Build() *Notification {
	n := b.n
	n.actions = make([]Action, len(b.n.actions))
	copy(n.actions, b.n.actions)
	return &n
}
