package entity

const (
	StatusPending        = "Pending"
	StatusConfirmed      = "Confirmed"
	StatusBeingCooked    = "Being Cooked"
	StatusReadyForPickup = "Ready for Pickup"
	StatusCompleted      = "Completed"
	StatusCancelled      = "Cancelled"
)

// statusTransitions lists the states reachable from each non-terminal state.
// Completed and Cancelled are terminal.
var statusTransitions = map[string][]string{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusBeingCooked, StatusCancelled},
	StatusBeingCooked:    {StatusReadyForPickup, StatusCancelled},
	StatusReadyForPickup: {StatusCompleted, StatusCancelled},
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusBeingCooked,
		StatusReadyForPickup, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. Re-asserting the current status is allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return ValidStatus(to)
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
