package entity

import "time"

// ReleaseDateFloor is the earliest release date a film may carry.
var ReleaseDateFloor = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

type Film struct {
	ID          int64     `db:"film_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ReleaseDate time.Time `db:"release_date"`
	Duration    int       `db:"duration"`
	MpaID       int       `db:"mpa_id"`

	// Hydrated on read.
	Mpa    *Mpa    `db:"-"`
	Genres []Genre `db:"-"`
	Likes  []int64 `db:"-"`
}

