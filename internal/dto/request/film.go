package request

// FilmRequest is used for create and update. ID is ignored on create.
type FilmRequest struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name" validate:"required,notblank"`
	Description string     `json:"description" validate:"max=200"`
	ReleaseDate string     `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Duration    int        `json:"duration" validate:"gt=0"`
	Mpa         *MpaRef    `json:"mpa" validate:"required"`
	Genres      []GenreRef `json:"genres,omitempty"`
}

type MpaRef struct {
	ID int `json:"id"`
}

type GenreRef struct {
	ID int `json:"id"`
}
