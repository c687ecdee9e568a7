package models

type Movie struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null"                 json:"title"`
	ReleaseYear int    `gorm:"not null"                 json:"release_year"`
}

// Actor references a Movie by id. The column carries no database-level
// foreign key constraint: deleting a movie leaves dependent actors with a
// dangling movie_id, matching the one-operation-one-commit contract.
type Actor struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null"                 json:"name"`
	Age     int    `gorm:"not null"                 json:"age"`
	Gender  string `gorm:"not null"                 json:"gender"`
	MovieID *uint  `gorm:"index"                    json:"movie_id"`
}
