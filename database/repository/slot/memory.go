package slotRepo

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"support-assistant/models"
)

// memoryInventory keeps the slot table in process memory. The mutex
// makes Book's check-then-set atomic; without it two concurrent
// requests could both claim the same slot.
type memoryInventory struct {
	mu    sync.Mutex
	slots []*models.MeetingSlot
	index map[string]*models.MeetingSlot
}

// NewMemoryInventory generates one slot per (day, hour) over the
// horizon starting today, all available. Called once per process.
func NewMemoryInventory(horizonDays, businessHourStart, businessHourEnd int) Inventory {
	inv := &memoryInventory{
		index: make(map[string]*models.MeetingSlot),
	}

	today := time.Now()
	for day := 0; day < horizonDays; day++ {
		date := today.AddDate(0, 0, day).Format("2006-01-02")
		for hour := businessHourStart; hour < businessHourEnd; hour++ {
			slot := &models.MeetingSlot{
				Date:      date,
				Time:      fmt.Sprintf("%02d:00", hour),
				Available: true,
			}
			inv.slots = append(inv.slots, slot)
			inv.index[slotKey(slot.Date, slot.Time)] = slot
		}
	}
	return inv
}

func slotKey(date, timeOfDay string) string {
	return date + "|" + timeOfDay
}

func (inv *memoryInventory) Query(preferredDate, preferredTime string) []models.MeetingSlot {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	preferredHour := -1
	if preferredTime != "" {
		preferredHour = hourOf(preferredTime)
	}

	var result []models.MeetingSlot
	for _, slot := range inv.slots {
		if !slot.Available {
			continue
		}
		if preferredDate != "" && slot.Date != preferredDate {
			continue
		}
		if preferredHour >= 0 {
			diff := hourOf(slot.Time) - preferredHour
			if diff < -2 || diff > 2 {
				continue
			}
		}
		result = append(result, *slot)
		if len(result) == maxQueryResults {
			break
		}
	}
	return result
}

func (inv *memoryInventory) Book(date, timeOfDay, requesterID string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	slot, ok := inv.index[slotKey(date, timeOfDay)]
	if !ok || !slot.Available {
		return false
	}
	slot.Available = false
	slot.BookedBy = requesterID
	return true
}

func (inv *memoryInventory) Release(date, timeOfDay string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if slot, ok := inv.index[slotKey(date, timeOfDay)]; ok {
		slot.Available = true
		slot.BookedBy = ""
	}
}

func (inv *memoryInventory) Snapshot() []models.MeetingSlot {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	out := make([]models.MeetingSlot, 0, len(inv.slots))
	for _, slot := range inv.slots {
		out = append(out, *slot)
	}
	return out
}

func hourOf(timeOfDay string) int {
	hour, err := strconv.Atoi(strings.SplitN(timeOfDay, ":", 2)[0])
	if err != nil {
		return -1
	}
	return hour
}
