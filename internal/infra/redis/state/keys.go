package infra_redis_state

import "github.com/humanbelnik/kinomatch/core/internal/model"

// Every key of a room carries the {roomID} hash tag so scripts stay on one slot.

func roomKey(roomID model.RoomID) string {
	return "room:{" + roomID + "}"
}

func membersKey(roomID model.RoomID) string {
	return roomKey(roomID) + ":members"
}

func poolKey(roomID model.RoomID) string {
	return roomKey(roomID) + ":pool"
}

func draftKey(roomID model.RoomID, userID model.UserID) string {
	return roomKey(roomID) + ":draft:" + userID
}

func swipesKey(roomID model.RoomID, userID model.UserID) string {
	return roomKey(roomID) + ":swipes:" + userID
}

const (
	fieldStatus         = "status"
	fieldHostID         = "host_id"
	fieldGuestID        = "guest_id"
	fieldHostReady      = "host_ready"
	fieldGuestReady     = "guest_ready"
	fieldCreatedAt      = "created_at"
	fieldVersion        = "version"
	fieldMatchedMediaID = "matched_media_id"
	fieldMatchedAt      = "matched_at"
)
