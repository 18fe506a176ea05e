package slotRepo

import "support-assistant/models"

// maxQueryResults caps how many available slots a query returns.
const maxQueryResults = 10

// Inventory is the process-wide store of bookable time slots. Slots are
// generated in bulk for a rolling horizon and mutated in place; they
// are never deleted.
type Inventory interface {
	// Query returns up to 10 available slots in insertion order
	// (date-ascending, then hour-ascending). An empty preferredDate or
	// preferredTime disables that filter; both filters compose with AND.
	// The time filter keeps slots within two hours of the preferred hour.
	Query(preferredDate, preferredTime string) []models.MeetingSlot

	// Book atomically claims the slot for requesterID. It returns false
	// when the slot does not exist or is already taken; no two callers
	// can both succeed for the same (date, time).
	Book(date, timeOfDay, requesterID string) bool

	// Release frees the slot and clears its owner. Releasing a slot
	// that is already available is a no-op.
	Release(date, timeOfDay string)

	// Snapshot copies every slot, booked or not.
	Snapshot() []models.MeetingSlot
}
