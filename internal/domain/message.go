package domain

import "strings"

// Slot is the positional placeholder a message body may carry once.
const Slot = "{}"

// Message is a dialog text record ready for display.
type Message struct {
	Title string
	Body  string
}

// HasSlot reports whether the body expects a runtime detail.
func (m Message) HasSlot() bool {
	return strings.Contains(m.Body, Slot)
}

// Format fills the slot with the first detail. Bodies without a slot are
// returned unchanged; surplus details are ignored. A slotted body formatted
// without detail gets an empty substitution so no marker is ever displayed.
func (m Message) Format(details ...string) Message {
	if !m.HasSlot() {
		return m
	}
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	m.Body = strings.Replace(m.Body, Slot, detail, 1)
	return m
}
