package agreement

import (
	"fmt"
	"math"
	"strings"
	"time"

	agreementModel "warehouse-booking/models/agreement"
	inventoryModel "warehouse-booking/models/inventory"

	"github.com/jinzhu/now"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ContentVersion = "1.0"
	dateLayout     = "2006-01-02"
)

// Terms are the booking terms the agreement is generated from.
type Terms struct {
	StartDate          time.Time
	EndDate            time.Time
	SpaceRequestedSqft *int
	MonthlyRate        float64
}

// ListingSnapshot is the part of a listing that appears in the agreement.
type ListingSnapshot struct {
	Title                  string
	SizeSqft               int
	City                   string
	Province               string
	Currency               string
	FulfillmentAvailable   bool
	FulfillmentDescription string
}

// Generator builds agreement documents. It has no side effects apart from
// reading the clock for the generation timestamp.
type Generator struct {
	PlatformName string
	Now          func() time.Time
	printer      *message.Printer
}

func NewGenerator(platformName string) *Generator {
	if platformName == "" {
		platformName = "WareShare"
	}
	return &Generator{
		PlatformName: platformName,
		Now:          time.Now,
		printer:      message.NewPrinter(language.English),
	}
}

// DurationMonths is max(1, round(days/30)) between the two dates.
func DurationMonths(start, end time.Time) int {
	days := now.With(end).BeginningOfDay().Sub(now.With(start).BeginningOfDay()).Hours() / 24
	months := int(math.Round(days / 30))
	if months < 1 {
		return 1
	}
	return months
}

// EstimatedTotal is rate times the whole-month duration.
func EstimatedTotal(terms Terms) float64 {
	return terms.MonthlyRate * float64(DurationMonths(terms.StartDate, terms.EndDate))
}

// Generate produces the fixed section set for a booking.
func (g *Generator) Generate(terms Terms, listing ListingSnapshot, items []inventoryModel.InventoryItem) agreementModel.Content {
	months := DurationMonths(terms.StartDate, terms.EndDate)
	total := terms.MonthlyRate * float64(months)

	sections := []agreementModel.Section{
		{
			Key:     agreementModel.SectionRentalTerms,
			Title:   "Rental Terms",
			Summary: "What this means for you: You are agreeing to rent warehouse space for the specified period at the agreed monthly rate.",
			Items: []agreementModel.Item{
				{Label: "Start Date", Value: terms.StartDate.Format(dateLayout)},
				{Label: "End Date", Value: terms.EndDate.Format(dateLayout)},
				{Label: "Duration", Value: pluralMonths(months)},
				{Label: "Space Requested", Value: g.spaceRequested(terms.SpaceRequestedSqft)},
				{Label: "Monthly Rate", Value: g.money(terms.MonthlyRate, listing.Currency)},
				{Label: "Estimated Total", Value: g.money(total, listing.Currency)},
			},
		},
		{
			Key:     agreementModel.SectionWarehouseDetails,
			Title:   "Warehouse Details",
			Summary: "What this means for you: This is the warehouse space you will be renting.",
			Items: []agreementModel.Item{
				{Label: "Listing Title", Value: listing.Title},
				{Label: "Total Size", Value: g.printer.Sprintf("%d sq ft", listing.SizeSqft)},
				{Label: "Location", Value: fmt.Sprintf("%s, %s", listing.City, listing.Province)},
				{Label: "Fulfillment Available", Value: yesNo(listing.FulfillmentAvailable)},
			},
		},
		{
			Key:     agreementModel.SectionInventoryDeclared,
			Title:   "Inventory Declared",
			Summary: "What this means for you: These are the items you plan to store. Please ensure accuracy.",
			Items:   inventoryRows(items),
		},
		{
			Key:     agreementModel.SectionPlatformTerms,
			Title:   "Standard Platform Terms",
			Summary: fmt.Sprintf("What this means for you: These are the standard terms that apply to all %s rentals.", g.PlatformName),
			Items: []agreementModel.Item{
				{Label: "Liability", Value: fmt.Sprintf("%s and the host are not liable for loss or damage to stored goods beyond reasonable care.", g.PlatformName)},
				{Label: "Access", Value: "Access to the warehouse will be arranged between host and renter."},
				{Label: "Prohibited Items", Value: "Hazardous materials, perishables, and illegal items are strictly prohibited."},
				{Label: "Termination", Value: "Either party may terminate with 30 days written notice."},
			},
		},
		{
			Key:            agreementModel.SectionSpecialConditions,
			Title:          "Special Conditions",
			Summary:        "What this means for you: The host may add specific conditions for this rental.",
			Items:          []agreementModel.Item{},
			EditableByHost: true,
		},
		{
			Key:      agreementModel.SectionNotes,
			Title:    "Additional Notes",
			Summary:  "Any additional information or comments.",
			Items:    []agreementModel.Item{},
			Freeform: true,
		},
	}

	if listing.FulfillmentAvailable && listing.FulfillmentDescription != "" {
		fulfillment := agreementModel.Section{
			Key:     agreementModel.SectionFulfillmentOptions,
			Title:   "Fulfillment Options",
			Summary: "What this means for you: This warehouse offers fulfillment services.",
			Items: []agreementModel.Item{
				{Label: "Description", Value: listing.FulfillmentDescription},
			},
		}
		// always the fourth section
		sections = append(sections[:3], append([]agreementModel.Section{fulfillment}, sections[3:]...)...)
	}

	return agreementModel.Content{
		Version:     ContentVersion,
		GeneratedAt: g.Now().UTC(),
		Sections:    sections,
	}
}

func (g *Generator) spaceRequested(sqft *int) string {
	if sqft == nil || *sqft <= 0 {
		return "Not specified sq ft"
	}
	return g.printer.Sprintf("%d sq ft", *sqft)
}

func (g *Generator) money(amount float64, currency string) string {
	return strings.TrimSpace(g.printer.Sprintf("$%v %s", amount, currency))
}

// inventoryRows numbers items within their own type: Pallet 1, Box 1, Pallet 2.
func inventoryRows(items []inventoryModel.InventoryItem) []agreementModel.Item {
	rows := make([]agreementModel.Item, 0, len(items))
	counters := make(map[inventoryModel.ItemType]int)
	for _, item := range items {
		itemType := item.Type
		if itemType == "" {
			itemType = inventoryModel.ItemTypeItem
		}
		counters[itemType]++

		value := fmt.Sprintf("%s (Qty: %d)", item.Name, item.Quantity)
		if item.Category != nil && *item.Category != "" {
			value += " - " + *item.Category
		}
		rows = append(rows, agreementModel.Item{
			Label: fmt.Sprintf("%s %d", capitalize(string(itemType)), counters[itemType]),
			Value: value,
		})
	}
	return rows
}

func pluralMonths(months int) string {
	if months > 1 {
		return fmt.Sprintf("%d months", months)
	}
	return fmt.Sprintf("%d month", months)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
