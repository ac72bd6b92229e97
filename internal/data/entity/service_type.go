package entity

// ServiceType is a catalog entry for an optional add-on service priced
// as a percentage of the reservation subtotal. Read-only reference data.
type ServiceType struct {
	Type                 string  `json:"type"`
	PercentageOfSubtotal float64 `json:"percentage_of_subtotal"`
	DisplayName          string  `json:"display_name"`
	Description          string  `json:"description"`
}

var serviceCatalog = []ServiceType{
	{
		Type:                 "guide",
		PercentageOfSubtotal: 0.20,
		DisplayName:          "Local Guide",
		Description:          "A licensed local guide accompanies the group for the whole experience",
	},
	{
		Type:                 "transport",
		PercentageOfSubtotal: 0.15,
		DisplayName:          "Transport",
		Description:          "Round-trip transport between the meeting point and the experience location",
	},
	{
		Type:                 "food",
		PercentageOfSubtotal: 0.10,
		DisplayName:          "Food & Drinks",
		Description:          "Local meals and drinks during the experience",
	},
	{
		Type:                 "equipment",
		PercentageOfSubtotal: 0.05,
		DisplayName:          "Equipment Rental",
		Description:          "All activity equipment provided on site",
	},
}

// ServiceCatalog returns the full add-on catalog.
func ServiceCatalog() []ServiceType {
	return serviceCatalog
}

// LookupServiceType returns the catalog entry for a service type identifier.
func LookupServiceType(serviceType string) (ServiceType, bool) {
	for _, st := range serviceCatalog {
		if st.Type == serviceType {
			return st, true
		}
	}
	return ServiceType{}, false
}
