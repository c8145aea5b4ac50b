package domain

// CardStatus is the closed set of workflow states a card can be in.
type CardStatus string

const (
	StatusToDo       CardStatus = "to_do"
	StatusInProgress CardStatus = "in_progress"
	StatusTesting    CardStatus = "testing"
	StatusDone       CardStatus = "done"
)

// CardStatuses lists every valid status in workflow order.
var CardStatuses = []CardStatus{StatusToDo, StatusInProgress, StatusTesting, StatusDone}

func (s CardStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusTesting, StatusDone:
		return true
	}
	return false
}

func (s CardStatus) String() string {
	return string(s)
}

// Card is a single task card embedded in a user document. The ID is
// assigned by the service on create, never taken from the client.
type Card struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      CardStatus `json:"status"`
}
