package models

import (
	"time"
)

// DateLayout is the only accepted wire format for release dates.
const DateLayout = "2006-01-02"

type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"size:100;not null" json:"title" example:"The Casting Call"`
	ReleaseDate time.Time `gorm:"type:date;not null" json:"release_date" example:"1999-01-01"`
	Actors      []Actor   `gorm:"many2many:actor_movie;constraint:OnDelete:CASCADE" json:"-"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieView is the public shape of a movie.
type MovieView struct {
	ID          uint   `json:"id" example:"1"`
	Title       string `json:"title" example:"The Casting Call"`
	ReleaseDate string `json:"release_date" example:"1999-01-01"`
}

func (m Movie) View() MovieView {
	return MovieView{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate.Format(DateLayout),
	}
}

func MovieViews(movies []Movie) []MovieView {
	views := make([]MovieView, 0, len(movies))
	for _, m := range movies {
		views = append(views, m.View())
	}
	return views
}

// MoviePatch holds the fields a partial update may change. Nil means untouched.
type MoviePatch struct {
	Title       *string
	ReleaseDate *time.Time
}

func (p MoviePatch) Apply(m *Movie) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.ReleaseDate != nil {
		m.ReleaseDate = *p.ReleaseDate
	}
}
