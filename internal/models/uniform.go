package models

// UniformGender is the top-level uniform grouping.
type UniformGender string

// UniformSeason is the second-level uniform grouping.
type UniformSeason string

const (
	UniformBoys  UniformGender = "boys"
	UniformGirls UniformGender = "girls"

	SeasonSummer UniformSeason = "summer"
	SeasonWinter UniformSeason = "winter"
	SeasonSports UniformSeason = "sports"
)

// UniformGenders and UniformSeasons list the groupings in display order.
var (
	UniformGenders = []UniformGender{UniformBoys, UniformGirls}
	UniformSeasons = []UniformSeason{SeasonSummer, SeasonWinter, SeasonSports}
)

// UniformItem is a priced uniform piece.
type UniformItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UniformSet groups items by season.
type UniformSet struct {
	Summer []UniformItem `json:"summer"`
	Winter []UniformItem `json:"winter"`
	Sports []UniformItem `json:"sports"`
}

// UniformShop is the uniform shop document.
type UniformShop struct {
	Boys  UniformSet `json:"boys"`
	Girls UniformSet `json:"girls"`
}

// Items returns the list for gender and season, or nil when either is unknown.
func (s *UniformShop) Items(gender UniformGender, season UniformSeason) *[]UniformItem {
	var set *UniformSet
	switch gender {
	case UniformBoys:
		set = &s.Boys
	case UniformGirls:
		set = &s.Girls
	default:
		return nil
	}
	switch season {
	case SeasonSummer:
		return &set.Summer
	case SeasonWinter:
		return &set.Winter
	case SeasonSports:
		return &set.Sports
	}
	return nil
}

// UniformItemRequest is the admin payload for adding an item.
type UniformItemRequest struct {
	Name  string  `json:"name" validate:"required,max=200"`
	Price float64 `json:"price" validate:"gte=0"`
}

// UniformItemPatch is a shallow update; nil fields are left untouched.
type UniformItemPatch struct {
	Name  *string  `json:"name" validate:"omitempty,max=200"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
}
