package models

type Actor struct {
	ID     uint    `gorm:"primaryKey" json:"id" example:"1"`
	Name   string  `gorm:"size:120;not null" json:"name" example:"Jane Doe"`
	Age    int     `gorm:"not null" json:"age" example:"30"`
	Gender string  `gorm:"size:120;not null" json:"gender" example:"female"`
	Movies []Movie `gorm:"many2many:actor_movie;constraint:OnDelete:CASCADE" json:"-"`
}

func (Actor) TableName() string {
	return "actors"
}

// ActorView is the public shape of an actor.
type ActorView struct {
	ID     uint   `json:"id" example:"1"`
	Name   string `json:"name" example:"Jane Doe"`
	Age    int    `json:"age" example:"30"`
	Gender string `json:"gender" example:"female"`
}

func (a Actor) View() ActorView {
	return ActorView{
		ID:     a.ID,
		Name:   a.Name,
		Age:    a.Age,
		Gender: a.Gender,
	}
}

func ActorViews(actors []Actor) []ActorView {
	views := make([]ActorView, 0, len(actors))
	for _, a := range actors {
		views = append(views, a.View())
	}
	return views
}

type ActorPatch struct {
	Name   *string
	Age    *int
	Gender *string
}

func (p ActorPatch) Apply(a *Actor) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
}

// MovieActor is a row of the actor_movie join table.
type MovieActor struct {
	MovieID uint `gorm:"primaryKey" json:"movie_id"`
	ActorID uint `gorm:"primaryKey" json:"actor_id"`
}

func (MovieActor) TableName() string {
	return "actor_movie"
}
