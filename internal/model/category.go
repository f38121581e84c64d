package model

// CategoryGroup indicates whether a category covers essential or
// discretionary spending.
type CategoryGroup string

const (
	// GroupEssential represents fixed, hard-to-avoid expenses.
	GroupEssential CategoryGroup = "essential"
	// GroupDiscretionary represents expenses that can be cut back.
	GroupDiscretionary CategoryGroup = "discretionary"
)

// Category describes one entry in the fixed expense catalog: a slider with a
// maximum, a step and a default monthly value.
type Category struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Group   CategoryGroup `json:"group"`
	Max     float64       `json:"max"`
	Step    float64       `json:"step"`
	Default float64       `json:"default"`
}

// ExpenseCategories is the canonical expense catalog. Category ids outside
// this list are permitted in expense maps as custom categories; they count
// toward the grand total but toward neither group total.
var ExpenseCategories = []Category{
	{ID: "rent", Name: "Rent", Group: GroupEssential, Max: 800, Step: 10, Default: 350},
	{ID: "groceries", Name: "Groceries", Group: GroupEssential, Max: 600, Step: 10, Default: 300},
	{ID: "utilities", Name: "Utilities & Services", Group: GroupEssential, Max: 300, Step: 10, Default: 150},
	{ID: "transport", Name: "Transportation", Group: GroupEssential, Max: 200, Step: 5, Default: 132},
	{ID: "health", Name: "Health & Personal Care", Group: GroupEssential, Max: 200, Step: 10, Default: 50},
	{ID: "food-delivery", Name: "Food Delivery", Group: GroupDiscretionary, Max: 150, Step: 5, Default: 75},
	{ID: "fast-food", Name: "Fast Food", Group: GroupDiscretionary, Max: 100, Step: 5, Default: 31},
	{ID: "subscriptions", Name: "Subscriptions", Group: GroupDiscretionary, Max: 300, Step: 5, Default: 165},
	{ID: "shopping", Name: "Shopping", Group: GroupDiscretionary, Max: 500, Step: 10, Default: 250},
	{ID: "gaming", Name: "Gaming", Group: GroupDiscretionary, Max: 200, Step: 5, Default: 85},
	{ID: "books", Name: "Books & Education", Group: GroupDiscretionary, Max: 100, Step: 5, Default: 30},
	{ID: "entertainment", Name: "Entertainment & Other", Group: GroupDiscretionary, Max: 300, Step: 10, Default: 100},
	{ID: "cash", Name: "Cash Withdrawals & Transfers", Group: GroupDiscretionary, Max: 200, Step: 10, Default: 50},
}

var catalogByID = func() map[string]Category {
	m := make(map[string]Category, len(ExpenseCategories))
	for _, c := range ExpenseCategories {
		m[c.ID] = c
	}
	return m
}()

// CatalogCategory looks up a category id in the canonical catalog. The second
// return distinguishes catalog ids from custom ones; callers branch on it
// explicitly when group membership matters.
func CatalogCategory(id string) (Category, bool) {
	c, ok := catalogByID[id]
	return c, ok
}
