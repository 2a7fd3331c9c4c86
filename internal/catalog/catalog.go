// Package catalog holds the controlled vocabularies of the registry. They
// are plain data injected into services and controllers instead of living
// as package-level globals, so tests and deployments can swap them out.
package catalog

// Catalog enumerates the recognized values for the classification fields
// across all entities.
type Catalog struct {
	Partners      []string `json:"partners"`
	FacilityTypes []string `json:"facilityTypes"`
	Capabilities  []string `json:"capabilities"`

	UsageDomains  []string `json:"usageDomains"`
	SupportPhases []string `json:"supportPhases"`
	// ElectronicsSupportPhases are the support phases an Electronics
	// equipment item must cover.
	ElectronicsSupportPhases []string `json:"electronicsSupportPhases"`

	ServiceCategories []string `json:"serviceCategories"`
	SkillTypes        []string `json:"skillTypes"`

	Affiliations    []string `json:"affiliations"`
	Specializations []string `json:"specializations"`
	Institutions    []string `json:"institutions"`

	NatureOfProject  []string `json:"natureOfProject"`
	InnovationFocus  []string `json:"innovationFocus"`
	PrototypeStages  []string `json:"prototypeStages"`
	ProjectStatuses  []string `json:"projectStatuses"`
	OutcomeTypes     []string `json:"outcomeTypes"`
	CommercStatuses  []string `json:"commercializationStatuses"`
	AlignmentTokens  []string `json:"alignmentTokens"`
}

// Default returns the vocabulary the registry ships with.
func Default() Catalog {
	return Catalog{
		Partners:      []string{"UniPod", "UIRI", "Lwera"},
		FacilityTypes: []string{"Laboratory", "Workshop", "Testing Center", "Maker Space"},
		Capabilities:  []string{"CNC", "PCB Fabrication", "Materials Testing"},

		UsageDomains:             []string{"Electronics", "Research", "Development", "Testing", "Production", "Education"},
		SupportPhases:            []string{"Prototyping", "Development", "Testing", "Training", "Production", "Maintenance"},
		ElectronicsSupportPhases: []string{"Prototyping", "Testing"},

		ServiceCategories: []string{"Machining", "Testing", "Training"},
		SkillTypes:        []string{"Hardware", "Software", "Integration"},

		Affiliations:    []string{"CS", "SE", "Engineering", "Other"},
		Specializations: []string{"Software", "Hardware", "Business"},
		Institutions:    []string{"SCIT", "CEDAT", "UniPod", "UIRI", "Lwera"},

		NatureOfProject: []string{"Research", "Prototype", "Applied Work"},
		InnovationFocus: []string{"IoT devices", "Smart Home", "Renewable Energy"},
		PrototypeStages: []string{"Concept", "Prototype", "MVP", "Market Launch"},
		ProjectStatuses: []string{"Concept", "Active", "Completed"},
		OutcomeTypes:    []string{"CAD", "PCB", "Prototype", "Report", "Business Plan"},
		CommercStatuses: []string{"Demoed", "Market Linked", "Launched"},
		AlignmentTokens: []string{"NDPIII", "Roadmap", "4IR", "Digital Transformation"},
	}
}

// Contains reports whether value is one of the recognized entries.
func Contains(entries []string, value string) bool {
	for _, e := range entries {
		if e == value {
			return true
		}
	}
	return false
}
