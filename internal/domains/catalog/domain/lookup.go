package domain

// Lookup is an entry of a reference list (categories, countries) served by the catalog API.
type Lookup struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// LookupID returns the id of the entry called name, or 0 when the list has none.
func LookupID(lookups []Lookup, name string) int64 {
	for _, l := range lookups {
		if l.Name == name {
			return l.ID
		}
	}
	return 0
}

// ProductRefs are the catalog API ids of a product's category and country of origin.
// Zero means unresolved.
type ProductRefs struct {
	CategoryID int64 `json:"categoryId,omitempty"`
	CountryID  int64 `json:"countryId,omitempty"`
}
