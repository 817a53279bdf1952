package dto

// CardQuery holds the query parameters of a card request.
// Values are free-form; unknown ones fall back to defaults downstream.
type CardQuery struct {
	Theme string `form:"theme"`
	Font  string `form:"font"`
	Type  string `form:"type"`
}
