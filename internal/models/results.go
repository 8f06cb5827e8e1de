package models

// LikeResult is the outcome of sending a like. MatchID refers to the edge
// that now carries the relationship: the freshly inserted pending edge, or
// the reciprocal edge that was promoted to accepted.
type LikeResult struct {
	MatchID uint        `json:"match_id"`
	Status  MatchStatus `json:"status"`
	IsMatch bool        `json:"is_match"`
	Message string      `json:"message,omitempty"`
}

// RespondResult is the outcome of responding to a pending like or unmatching.
type RespondResult struct {
	MatchID uint        `json:"match_id"`
	Status  MatchStatus `json:"status"`
	IsMatch bool        `json:"is_match"`
	Message string      `json:"message"`
}

// Stats aggregates a user's match counters for the profile screen.
type Stats struct {
	Matches int64 `json:"matches"`
	Likes   int64 `json:"likes"`
}

// BadgeCounts carries the client badge numbers: match conversations with
// unread messages and the count of pending likes received.
type BadgeCounts struct {
	UnreadChats   []uint `json:"unread_chats"`
	FavoriteBadge int64  `json:"favorite_badge"`
}
