package model

// NamingRule pairs a category with the pattern its file names must match.
type NamingRule struct {
	Category Category
	// Pattern is the regular expression source the name is matched against.
	Pattern string
	// Expected is the human-readable form shown to users.
	Expected string
}
