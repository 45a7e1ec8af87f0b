package entity

import "time"

type Like struct {
	FilmID    int64     `db:"film_id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
