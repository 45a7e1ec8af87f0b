package response

import "film-catalog/internal/data/entity"

type GenreResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MpaResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func MpaToResponse(mpa *entity.Mpa) MpaResponse {
	return MpaResponse{
		ID:          mpa.ID,
		Name:        mpa.Name,
		Description: mpa.Description,
	}
}
