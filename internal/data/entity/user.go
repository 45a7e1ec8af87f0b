package entity

import "time"

type User struct {
	ID       int64     `db:"user_id"`
	Email    string    `db:"email"`
	Login    string    `db:"login"`
	Name     string    `db:"name"`
	Birthday time.Time `db:"birthday"`

	// Friends holds the ids of users this user added, ascending. Hydrated on read.
	Friends []int64 `db:"-"`
}
