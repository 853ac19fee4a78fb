package voiceorder

// Role tags a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one immutable entry of a conversation.
type Turn struct {
	Role Role
	Text string
}

// Payment holds card details, or PlaceholderOnFile values.
type Payment struct {
	CardNumber string
	CardExpiry string
	CardCvc    string
}

// OrderDraft is the order assembled from the conversation so far.
// An empty DinnerID or StyleID means the name did not resolve.
type OrderDraft struct {
	DinnerID        string
	DinnerName      string
	StyleID         string
	StyleName       string
	DeliveryDate    string
	DeliveryAddress string
	Payment         Payment
	// Customizations maps menu item id to final quantity.
	Customizations map[string]int
}

// NewOrderDraft returns an empty draft with an initialized customization map.
func NewOrderDraft() OrderDraft {
	return OrderDraft{Customizations: map[string]int{}}
}

// Clone returns a deep copy of d.
func (d OrderDraft) Clone() OrderDraft {
	c := d
	c.Customizations = make(map[string]int, len(d.Customizations))
	for k, v := range d.Customizations {
		c.Customizations[k] = v
	}
	return c
}

// --- Use case I/O ---

type StartInput struct {
	CustomerName string
}

type StartOutput struct {
	SessionID     string
	AssistantText string
}

type TurnInput struct {
	SessionID    string
	UserText     string
	CustomerName string
}

type TurnOutput struct {
	SessionID     string
	AssistantText string
	// DisplayText is AssistantText with the completion block removed.
	DisplayText     string
	IsOrderComplete bool
	Draft           *OrderDraft
	// Recovered is set when the session id was unknown and a new session was started.
	Recovered bool
}
