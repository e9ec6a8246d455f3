package model

import "time"

type MediaID = string

type Media struct {
	ID         MediaID
	Title      string
	PosterPath string
}

type SwipeAction string

const (
	SwipeLike SwipeAction = "LIKE"
	SwipeSkip SwipeAction = "SKIP"
)

func (a SwipeAction) Valid() bool {
	return a == SwipeLike || a == SwipeSkip
}

type MatchData struct {
	MediaID    MediaID   `json:"mediaId"`
	MediaTitle string    `json:"mediaTitle"`
	PosterPath string    `json:"posterPath"`
	MatchedAt  time.Time `json:"matchedAt"`
}

type SwipeResult struct {
	IsMatch   bool       `json:"isMatch"`
	MatchData *MatchData `json:"matchData,omitempty"`
}
