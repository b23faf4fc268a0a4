package agreement

import "time"

// Section keys of the generated document.
const (
	SectionRentalTerms        = "rental_terms"
	SectionWarehouseDetails   = "warehouse_details"
	SectionFulfillmentOptions = "fulfillment_options"
	SectionInventoryDeclared  = "inventory_declared"
	SectionPlatformTerms      = "platform_terms"
	SectionSpecialConditions  = "special_conditions"
	SectionNotes              = "notes"
)

// Item is one label/value row of a section.
type Item struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is a named part of the agreement. Freeform sections carry Content
// instead of Items.
type Section struct {
	Key            string `json:"key"`
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	Items          []Item `json:"items"`
	EditableByHost bool   `json:"editable_by_host,omitempty"`
	Freeform       bool   `json:"freeform,omitempty"`
	Content        string `json:"content,omitempty"`
}

// Content is the structured agreement document.
type Content struct {
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
}

// Section returns a pointer to the section with key, or nil.
func (c *Content) Section(key string) *Section {
	for i := range c.Sections {
		if c.Sections[i].Key == key {
			return &c.Sections[i]
		}
	}
	return nil
}

// Keys lists section keys in document order.
func (c *Content) Keys() []string {
	keys := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		keys = append(keys, s.Key)
	}
	return keys
}
