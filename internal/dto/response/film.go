package response

import "film-catalog/internal/data/entity"

type FilmResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ReleaseDate string          `json:"releaseDate"`
	Duration    int             `json:"duration"`
	Mpa         *MpaResponse    `json:"mpa"`
	Genres      []GenreResponse `json:"genres"`
	Likes       []int64         `json:"likes"`
	LikeCount   int             `json:"like_count"`
}

// FilmToResponse expects a hydrated film.
func FilmToResponse(film *entity.Film) FilmResponse {
	resp := FilmResponse{
		ID:          film.ID,
		Name:        film.Name,
		Description: film.Description,
		ReleaseDate: film.ReleaseDate.Format("2006-01-02"),
		Duration:    film.Duration,
		Genres:      make([]GenreResponse, 0, len(film.Genres)),
		Likes:       film.Likes,
		LikeCount:   len(film.Likes),
	}

	if film.Mpa != nil {
		mpa := MpaToResponse(film.Mpa)
		resp.Mpa = &mpa
	} else {
		resp.Mpa = &MpaResponse{ID: film.MpaID}
	}

	for i := range film.Genres {
		resp.Genres = append(resp.Genres, GenreToResponse(&film.Genres[i]))
	}

	if resp.Likes == nil {
		resp.Likes = []int64{}
	}

	return resp
}

func FilmsToResponse(films []*entity.Film) []FilmResponse {
	result := make([]FilmResponse, 0, len(films))
	for _, film := range films {
		result = append(result, FilmToResponse(film))
	}
	return result
}
