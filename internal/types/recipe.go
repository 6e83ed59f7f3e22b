package types

// Recipe is the structured recipe produced by the completion service. Field
// order matters: responses are serialized with the fields in this order.
type Recipe struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
}

// Ingredient is a single recipe ingredient. ImageURL is only populated when
// the illustrated schema variant is active.
type Ingredient struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ImageResult holds the first hit of an image search.
type ImageResult struct {
	URL   string `json:"url"`
	Thumb string `json:"thumb"`
}
