package model

import "time"

type RoomID = string

type UserID = string

const EmptyRoomID RoomID = ""

// MaxMembers is the number of participants of a matching session.
const MaxMembers = 2

type Status string

const (
	StatusWaiting   Status = "WAITING"
	StatusSelecting Status = "SELECTING"
	StatusSwiping   Status = "SWIPING"
	StatusMatched   Status = "MATCHED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsTerminal() bool {
	return s == StatusMatched || s == StatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
// WAITING -> SELECTING -> SWIPING -> MATCHED, any live state -> CANCELLED.
func (s Status) CanTransitionTo(next Status) bool {
	switch next {
	case StatusSelecting:
		return s == StatusWaiting
	case StatusSwiping:
		return s == StatusSelecting
	case StatusMatched:
		return s == StatusSwiping
	case StatusCancelled:
		return !s.IsTerminal()
	}
	return false
}

// AcceptsDrafts reports whether drafts may still change in this status.
func (s Status) AcceptsDrafts() bool {
	return s == StatusWaiting || s == StatusSelecting
}

type Room struct {
	ID         RoomID
	Status     Status
	HostID     UserID
	GuestID    UserID
	HostReady  bool
	GuestReady bool
	CreatedAt  time.Time
	Version    int64
}

func (r Room) IsHost(userID UserID) bool {
	return userID != "" && r.HostID == userID
}

func (r Room) IsMember(userID UserID) bool {
	return userID != "" && (r.HostID == userID || r.GuestID == userID)
}

// Opponent returns the other member of the room, empty if absent.
func (r Room) Opponent(userID UserID) UserID {
	switch userID {
	case r.HostID:
		return r.GuestID
	case r.GuestID:
		return r.HostID
	}
	return ""
}

func (r Room) BothReady() bool {
	return r.HostReady && r.GuestReady
}

// MemberIDs lists the known participants, host first.
func (r Room) MemberIDs() []UserID {
	ids := make([]UserID, 0, MaxMembers)
	if r.HostID != "" {
		ids = append(ids, r.HostID)
	}
	if r.GuestID != "" {
		ids = append(ids, r.GuestID)
	}
	return ids
}

type Member struct {
	UserID   UserID `json:"userId"`
	Nickname string `json:"nickname"`
	IsHost   bool   `json:"isHost"`
}

// RoomData is a membership snapshot as seen by one participant.
type RoomData struct {
	RoomID   RoomID   `json:"roomId"`
	UserID   UserID   `json:"userId"`
	Nickname string   `json:"nickname"`
	IsHost   bool     `json:"isHost"`
	Status   Status   `json:"status"`
	Members  []Member `json:"users"`
}
