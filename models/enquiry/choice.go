// Package enquiry models the contact-form domain: exclusive-choice
// classification fields, attachment staging with an admission policy, and
// preferred-date selection. The form client and the intake handler both build
// on these types.
package enquiry

// PropertyType classifies the property an enquiry concerns. The zero value
// means the customer has not chosen one.
type PropertyType string

const (
	PropertyTypeUnset      PropertyType = ""
	PropertyTypeDomestic   PropertyType = "Domestic"
	PropertyTypeCommercial PropertyType = "Commercial"
	PropertyTypeIndustrial PropertyType = "Industrial"
)

// PropertyTypes lists the selectable property types in display order.
var PropertyTypes = []PropertyType{
	PropertyTypeDomestic,
	PropertyTypeCommercial,
	PropertyTypeIndustrial,
}

// Toggle applies the exclusive-choice transition: selecting the active choice
// clears it, selecting another replaces it.
func (p PropertyType) Toggle(choice PropertyType) PropertyType {
	if p == choice {
		return PropertyTypeUnset
	}
	return choice
}

// Urgency classifies how soon the customer needs the work done.
type Urgency string

const (
	UrgencyUnset     Urgency = ""
	UrgencyASAP      Urgency = "ASAP"
	UrgencyThisWeek  Urgency = "Within a week"
	UrgencyThisMonth Urgency = "Within a month"
	UrgencyFlexible  Urgency = "Flexible"
)

// Urgencies lists the selectable urgency options in display order.
var Urgencies = []Urgency{
	UrgencyASAP,
	UrgencyThisWeek,
	UrgencyThisMonth,
	UrgencyFlexible,
}

// Toggle applies the exclusive-choice transition for urgency.
func (u Urgency) Toggle(choice Urgency) Urgency {
	if u == choice {
		return UrgencyUnset
	}
	return choice
}

// Bedrooms is the bedroom count for domestic properties.
type Bedrooms string

const (
	BedroomsUnset Bedrooms = ""
	BedroomsOne   Bedrooms = "1"
	BedroomsTwo   Bedrooms = "2"
	BedroomsThree Bedrooms = "3"
	BedroomsFour  Bedrooms = "4"
	BedroomsFive  Bedrooms = "5+"
)

// BedroomOptions lists the selectable bedroom counts in display order.
var BedroomOptions = []Bedrooms{
	BedroomsOne,
	BedroomsTwo,
	BedroomsThree,
	BedroomsFour,
	BedroomsFive,
}

// Toggle applies the exclusive-choice transition for bedrooms.
func (b Bedrooms) Toggle(choice Bedrooms) Bedrooms {
	if b == choice {
		return BedroomsUnset
	}
	return choice
}
