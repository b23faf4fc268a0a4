package agreement

import (
	agreementModel "warehouse-booking/models/agreement"
)

// Edit is a host edit of the agreement. Each non-nil field is one update
// variant; variants may be combined and are applied in field order.
type Edit struct {
	ReplaceSections   *[]agreementModel.Section
	SpecialConditions *[]string
	Notes             *string
}

// IsEmpty reports whether the edit carries no update at all.
func (e Edit) IsEmpty() bool {
	return e.ReplaceSections == nil && e.SpecialConditions == nil && e.Notes == nil
}

// Apply returns a copy of content with the edit merged in. Updates whose
// target section is absent are skipped.
func Apply(content agreementModel.Content, edit Edit) agreementModel.Content {
	out := agreementModel.Content{
		Version:     content.Version,
		GeneratedAt: content.GeneratedAt,
		Sections:    cloneSections(content.Sections),
	}

	if edit.ReplaceSections != nil {
		out.Sections = cloneSections(*edit.ReplaceSections)
	}

	if edit.SpecialConditions != nil {
		if section := out.Section(agreementModel.SectionSpecialConditions); section != nil {
			items := make([]agreementModel.Item, 0, len(*edit.SpecialConditions))
			for _, condition := range *edit.SpecialConditions {
				items = append(items, agreementModel.Item{Label: "Condition", Value: condition})
			}
			section.Items = items
		}
	}

	if edit.Notes != nil {
		if section := out.Section(agreementModel.SectionNotes); section != nil {
			section.Content = *edit.Notes
		}
	}

	return out
}

func cloneSections(sections []agreementModel.Section) []agreementModel.Section {
	out := make([]agreementModel.Section, len(sections))
	for i, s := range sections {
		out[i] = s
		out[i].Items = append([]agreementModel.Item{}, s.Items...)
	}
	return out
}
