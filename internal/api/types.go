package api

// Hit is one raw entry from the quicksearch response. The id lives under a
// different field depending on the category: repos use "id", users "user",
// organizations "name". Unused fields stay empty.
type Hit struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Name      string `json:"name"`
	FullName  string `json:"fullname"`
	AvatarURL string `json:"avatarUrl"`
}

// QuickSearchResponse is the raw category-to-entries mapping returned by
// /api/quicksearch. Per-category order is meaningful and preserved.
type QuickSearchResponse struct {
	Models   []Hit `json:"models"`
	Datasets []Hit `json:"datasets"`
	Spaces   []Hit `json:"spaces"`
	Users    []Hit `json:"users"`
	Orgs     []Hit `json:"orgs"`
}

// Hits returns the entries recorded under a response key.
func (r *QuickSearchResponse) Hits(responseKey string) []Hit {
	if r == nil {
		return nil
	}
	switch responseKey {
	case "models":
		return r.Models
	case "datasets":
		return r.Datasets
	case "spaces":
		return r.Spaces
	case "users":
		return r.Users
	case "orgs":
		return r.Orgs
	}
	return nil
}
