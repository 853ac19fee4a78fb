package voiceorder

// Completion block protocol shared with the language model.
const (
	StartMarker = "[ORDER_COMPLETE]"
	EndMarker   = "[/ORDER_COMPLETE]"

	// PlaceholderOnFile stands in for address and payment details the
	// ordering service already holds for the customer.
	PlaceholderOnFile = "ON_FILE"
)
