package service

// Schema is a minimal JSON Schema descriptor, sufficient to express the
// strict response-format constraint sent to the completion service.
type Schema struct {
	Type                 string             `json:"type,omitempty"`
	Description          string             `json:"description,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
}

// SchemaVariant selects which recipe shape the completion service is
// constrained to.
type SchemaVariant string

const (
	// SchemaBasic is the plain recipe shape.
	SchemaBasic SchemaVariant = "basic"
	// SchemaIllustrated additionally requires an image URL per ingredient.
	SchemaIllustrated SchemaVariant = "illustrated"
)

// Built once at startup and treated as read-only afterwards.
var (
	basicRecipeSchema       = buildRecipeSchema(false)
	illustratedRecipeSchema = buildRecipeSchema(true)
)

// RecipeSchema returns the schema constraint for the given variant.
func RecipeSchema(variant SchemaVariant) *Schema {
	if variant == SchemaIllustrated {
		return illustratedRecipeSchema
	}
	return basicRecipeSchema
}

func buildRecipeSchema(illustrated bool) *Schema {
	ingredient := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"name":        {Type: "string", Description: "Name of the ingredient"},
			"amount":      {Type: "string", Description: "Quantity needed, e.g. '2 cups'"},
			"description": {Type: "string", Description: "How the ingredient is prepared or used"},
		},
		Required:             []string{"name", "amount", "description"},
		AdditionalProperties: false,
	}
	if illustrated {
		ingredient.Properties["imageUrl"] = &Schema{Type: "string", Description: "URL of a representative image of the ingredient"}
		ingredient.Required = append(ingredient.Required, "imageUrl")
	}

	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"name":        {Type: "string", Description: "Name of the dish"},
			"description": {Type: "string", Description: "Short description of the dish"},
			"ingredients": {Type: "array", Items: ingredient},
			"instructions": {
				Type:  "array",
				Items: &Schema{Type: "string", Description: "A single preparation step"},
			},
		},
		Required:             []string{"name", "description", "ingredients", "instructions"},
		AdditionalProperties: false,
	}
}
