package entity

type Mpa struct {
	ID          int    `db:"mpa_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}
