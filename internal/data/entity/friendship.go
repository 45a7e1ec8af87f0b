package entity

import "time"

type FriendshipStatus string

const (
	FriendshipStatusPending   FriendshipStatus = "PENDING"
	FriendshipStatusConfirmed FriendshipStatus = "CONFIRMED"
)

// Friendship is owned by UserID and points at FriendID. The reverse row is independent.
type Friendship struct {
	UserID    int64            `db:"user_id"`
	FriendID  int64            `db:"friend_id"`
	Status    FriendshipStatus `db:"status"`
	CreatedAt time.Time        `db:"created_at"`
}
