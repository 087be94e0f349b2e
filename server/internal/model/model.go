package model

import (
	"time"

	"github.com/practicum/shareit/server/internal/errs"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCancelled has no transition path through the API.
	StatusCancelled Status = "CANCELLED"
)

// State is the logical booking filter of the list queries.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func ParseState(value string) (State, error) {
	switch State(value) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(value), nil
	}
	return "", errs.StateError{Value: value}
}

// Role selects whether an actor is matched against the booker or the item owner.
type Role uint8

const (
	RoleBooker Role = iota
	RoleOwner
)

type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Available   bool   `json:"available" db:"available"`
	OwnerID     int64  `json:"owner" db:"owner_id"`
	RequestID   *int64 `json:"requestId,omitempty" db:"request_id"`
}

type Booking struct {
	ID       int64     `json:"id" db:"id"`
	Start    time.Time `json:"start" db:"start_ts"`
	End      time.Time `json:"end" db:"end_ts"`
	ItemID   int64     `json:"itemId" db:"item_id"`
	BookerID int64     `json:"bookerId" db:"booker_id"`
	Status   Status    `json:"status" db:"status"`
}

// BookingInfo is the booking view returned to callers.
type BookingInfo struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status Status    `json:"status"`
	Booker User      `json:"booker"`
	Item   Item      `json:"item"`
}

// BookingBrief annotates an item with its last/next booking.
type BookingBrief struct {
	ID       int64     `json:"id" db:"id"`
	BookerID int64     `json:"bookerId" db:"booker_id"`
	Start    time.Time `json:"start" db:"start_ts"`
	End      time.Time `json:"end" db:"end_ts"`
}

type Comment struct {
	ID       int64     `json:"id" db:"id"`
	Text     string    `json:"text" db:"text"`
	ItemID   int64     `json:"itemId" db:"item_id"`
	AuthorID int64     `json:"authorId" db:"author_id"`
	Created  time.Time `json:"created" db:"created"`
}

type CommentInfo struct {
	ID         int64     `json:"id" db:"id"`
	Text       string    `json:"text" db:"text"`
	AuthorName string    `json:"authorName" db:"author_name"`
	Created    time.Time `json:"created" db:"created"`
}

type ItemInfo struct {
	Item
	Comments    []CommentInfo `json:"comments"`
	LastBooking *BookingBrief `json:"lastBooking,omitempty"`
	NextBooking *BookingBrief `json:"nextBooking,omitempty"`
}

type ItemRequest struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	RequestorID int64     `json:"requestorId" db:"requestor_id"`
	Created     time.Time `json:"created" db:"created"`
}

type ItemRequestInfo struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []Item    `json:"items"`
}
