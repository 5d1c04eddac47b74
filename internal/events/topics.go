package events

// Topic constants for basket mutations.
const (
	TopicLineAdded       = "basket.line_added"
	TopicLineRemoved     = "basket.line_removed"
	TopicLineChecked     = "basket.line_checked"
	TopicQuantityChanged = "basket.quantity_changed"
	TopicCheckedCleared  = "basket.checked_cleared"
)

// DefaultTopics returns the canonical list of emitted topics.
func DefaultTopics() []string {
	return []string{
		TopicLineAdded,
		TopicLineRemoved,
		TopicLineChecked,
		TopicQuantityChanged,
		TopicCheckedCleared,
	}
}
