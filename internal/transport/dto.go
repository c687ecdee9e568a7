package transport

type CreateMovieRequest struct {
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
}

type PatchMovieRequest struct {
	Title       *string `json:"title"`
	ReleaseYear *int    `json:"release_year"`
}

type CreateActorRequest struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	MovieID uint   `json:"movie_id"`
}

type PatchActorRequest struct {
	Name    *string `json:"name"`
	Age     *int    `json:"age"`
	Gender  *string `json:"gender"`
	MovieID *uint   `json:"movie_id"`
}
