package search

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultBaseURL is the Hub origin used for canonical entity URLs and as
// the default lookup target.
const DefaultBaseURL = "https://huggingface.co"

const (
	// ResultLimitDefault is the per-category page size used when the
	// configuration does not set one.
	ResultLimitDefault = 5
	// ResultLimitMax mirrors the quicksearch API, which rejects requests
	// with limit > 20.
	ResultLimitMax = 20
)

// Category describes one result grouping returned by the quicksearch
// endpoint. Categories are iterated in the fixed order of the Categories
// table; that order defines both chip order and dropdown grouping order.
type Category struct {
	Key         string // type key used in config and filter chips
	ResponseKey string // key in the raw quicksearch response
	Label       string // display label for headers and chips
	IDField     string // response field carrying the entry id
}

// Categories is the fixed ordered category table. Users and organizations
// carry their id under different field names than the rest; the parser
// falls back to "id" and then "name" when the listed field is absent.
var Categories = []Category{
	{Key: "model", ResponseKey: "models", Label: "Models", IDField: "id"},
	{Key: "dataset", ResponseKey: "datasets", Label: "Datasets", IDField: "id"},
	{Key: "space", ResponseKey: "spaces", Label: "Spaces", IDField: "id"},
	{Key: "user", ResponseKey: "users", Label: "Users", IDField: "user"},
	{Key: "org", ResponseKey: "orgs", Label: "Organizations", IDField: "name"},
}

// CategoryByKey returns the table row for a type key, or nil.
func CategoryByKey(key string) *Category {
	for i := range Categories {
		if Categories[i].Key == key {
			return &Categories[i]
		}
	}
	return nil
}

// ParseTypes normalizes a search type spec ("all" or a comma-separated
// list) into type keys in table order. Unknown types are rejected.
func ParseTypes(spec string) ([]string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "all" {
		keys := make([]string, len(Categories))
		for i, c := range Categories {
			keys[i] = c.Key
		}
		return keys, nil
	}

	wanted := map[string]bool{}
	for _, raw := range strings.Split(spec, ",") {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		if CategoryByKey(t) == nil {
			return nil, fmt.Errorf("invalid search type %q (must be one of %s, or \"all\")", t, strings.Join(validTypeKeys(), ", "))
		}
		wanted[t] = true
	}
	if len(wanted) == 0 {
		return nil, fmt.Errorf("empty search type spec")
	}

	// Reorder to table order regardless of input order.
	out := make([]string, 0, len(wanted))
	for _, c := range Categories {
		if wanted[c.Key] {
			out = append(out, c.Key)
		}
	}
	return out, nil
}

func validTypeKeys() []string {
	keys := make([]string, len(Categories))
	for i, c := range Categories {
		keys[i] = c.Key
	}
	sort.Strings(keys)
	return keys
}

// URLFor builds the canonical Hub URL for an entity of the given type.
func URLFor(baseURL, typ, id string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	switch typ {
	case "dataset":
		return base + "/datasets/" + id
	case "space":
		return base + "/spaces/" + id
	default:
		// Models, users and orgs live at the root namespace.
		return base + "/" + id
	}
}
