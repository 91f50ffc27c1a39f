package models

// Categories is the closed list of quiz categories. Both quiz validation and
// the category-count endpoint consume this single list, so the two can never
// drift apart.
var Categories = []string{
	"Science",
	"Mathematics",
	"History",
	"Geography",
	"Programming",
	"General Knowledge",
	"Literature",
	"Sports",
	"Entertainment",
	"Technology",
	"Other",
}

const DefaultCategory = "General Knowledge"

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
