package enquiry

// Form is the client-held, ephemeral state of one contact-form interaction.
// It is created empty, mutated by user input, kept intact across a failed
// submission, and cleared entirely on success.
type Form struct {
	Name     string
	Phone    string
	Email    string
	Message  string
	Service  string
	Location string

	PropertyType PropertyType
	Bedrooms     Bedrooms
	Urgency      Urgency

	PreferredDate *DateSelection
	Attachments   *Stage
}

// NewForm returns an empty form governed by the given staging policy.
func NewForm(policy StagePolicy) *Form {
	return &Form{
		PreferredDate: NewDateSelection(),
		Attachments:   NewStage(policy),
	}
}

// TogglePropertyType applies the exclusive-choice transition. Bedrooms only
// make sense for domestic properties, so any non-Domestic outcome clears the
// bedroom selection.
func (f *Form) TogglePropertyType(choice PropertyType) {
	f.PropertyType = f.PropertyType.Toggle(choice)
	if f.PropertyType != PropertyTypeDomestic {
		f.Bedrooms = BedroomsUnset
	}
}

// ToggleBedrooms applies the exclusive-choice transition for bedrooms.
func (f *Form) ToggleBedrooms(choice Bedrooms) {
	f.Bedrooms = f.Bedrooms.Toggle(choice)
}

// ToggleUrgency applies the exclusive-choice transition for urgency.
func (f *Form) ToggleUrgency(choice Urgency) {
	f.Urgency = f.Urgency.Toggle(choice)
}

// Fields returns the text parts of the multipart payload, keyed by the wire
// field names the intake handler reads.
func (f *Form) Fields() map[string]string {
	return map[string]string{
		"name":          f.Name,
		"phone":         f.Phone,
		"email":         f.Email,
		"message":       f.Message,
		"service":       f.Service,
		"location":      f.Location,
		"propertyType":  string(f.PropertyType),
		"bedrooms":      string(f.Bedrooms),
		"urgency":       string(f.Urgency),
		"preferredDate": f.PreferredDate.String(),
	}
}

// Reset clears every field, selection, and staged attachment back to the
// initial empty state.
func (f *Form) Reset() {
	f.Name = ""
	f.Phone = ""
	f.Email = ""
	f.Message = ""
	f.Service = ""
	f.Location = ""
	f.PropertyType = PropertyTypeUnset
	f.Bedrooms = BedroomsUnset
	f.Urgency = UrgencyUnset
	f.PreferredDate.Clear()
	f.Attachments.Clear()
}
