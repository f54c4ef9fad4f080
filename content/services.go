package content

// Service is a catalogue entry shown on the services index and in the
// contact form's service picker.
type Service struct {
	Title     string
	Slug      string
	ShortDesc string
}

// ProcessStep is one stage of how a service is delivered.
type ProcessStep struct {
	Title string
	Desc  string
}

// FAQ is a question and answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// ServiceDetail is the full content of a service page.
type ServiceDetail struct {
	MetaTitle string
	MetaDesc  string
	Hero      string
	Intro     []string
	Features  []string
	Process   []ProcessStep
	FAQs      []FAQ
}

// Services is the catalogue in display order.
var Services = []Service{
	{
		Title:     "Asbestos Surveys",
		Slug:      "asbestos-surveys",
		ShortDesc: "Comprehensive management, refurbishment, and demolition surveys conducted by BOHS-qualified surveyors in full compliance with HSG264.",
	},
	{
		Title:     "Asbestos Removal",
		Slug:      "asbestos-removal",
		ShortDesc: "Licensed and non-licensed asbestos removal by HSE-licensed contractors, ensuring safe extraction and full regulatory compliance.",
	},
	{
		Title:     "Asbestos Encapsulation",
		Slug:      "asbestos-encapsulation",
		ShortDesc: "Professional encapsulation treatments to safely manage asbestos-containing materials in situ where removal is not required.",
	},
	{
		Title:     "Asbestos Sampling",
		Slug:      "asbestos-sampling",
		ShortDesc: "Accurate bulk sampling and air monitoring conducted to UKAS-accredited laboratory standards for reliable identification.",
	},
	{
		Title:     "Asbestos Testing",
		Slug:      "asbestos-testing",
		ShortDesc: "UKAS-accredited laboratory analysis of suspected asbestos-containing materials with rapid turnaround and detailed reporting.",
	},
	{
		Title:     "Asbestos Disposal",
		Slug:      "asbestos-disposal",
		ShortDesc: "Environment Agency licensed disposal of asbestos waste at approved hazardous waste facilities with full consignment tracking.",
	},
}

// ServiceBySlug returns the catalogue entry and its page content for a slug.
// The second return is false for unknown slugs.
func ServiceBySlug(slug string) (Service, ServiceDetail, bool) {
	detail, ok := serviceDetails[slug]
	if !ok {
		return Service{}, ServiceDetail{}, false
	}
	for _, s := range Services {
		if s.Slug == slug {
			return s, detail, true
		}
	}
	return Service{}, ServiceDetail{}, false
}

var serviceDetails = map[string]ServiceDetail{
	"asbestos-surveys": {
		MetaTitle: "Asbestos Surveys Hampshire — Management, Refurbishment & Demolition",
		MetaDesc:  "Professional asbestos surveys in Hampshire by BOHS-qualified surveyors. Management, refurbishment, and demolition surveys compliant with HSG264. Rapid reporting.",
		Hero:      "Expert Asbestos Surveys Across Hampshire",
		Intro: []string{
			"Our BOHS P402-qualified surveyors deliver comprehensive asbestos surveys across Hampshire, fully compliant with HSG264 guidelines. Whether you need a management survey to meet your duty to manage obligations, or a refurbishment and demolition survey before planned works, we provide accurate identification and clear management recommendations.",
		},
		Features: []string{
			"Management surveys (HSG264 Type 1/2)",
			"Refurbishment surveys before renovation works",
			"Demolition surveys before structural demolition",
			"Bulk sampling with UKAS-accredited analysis",
			"Material assessment and priority scoring",
			"Comprehensive asbestos register production",
		},
		Process: []ProcessStep{
			{Title: "Site Assessment", Desc: "We evaluate the property type, age, and planned activities to determine the appropriate survey scope."},
			{Title: "Systematic Inspection", Desc: "Our surveyor methodically inspects all accessible areas, collecting representative samples of suspected ACMs."},
			{Title: "Laboratory Analysis", Desc: "Samples are analysed at a UKAS-accredited laboratory using polarised light microscopy (PLM)."},
			{Title: "Detailed Reporting", Desc: "You receive a comprehensive report with asbestos register, risk assessments, and management recommendations within 24 hours."},
		},
		FAQs: []FAQ{
			{
				Question: "What is the difference between a management survey and a refurbishment survey?",
				Answer:   "A management survey is designed to locate asbestos-containing materials that could be damaged or disturbed during normal occupancy and routine maintenance. A refurbishment survey is more intrusive and is required before any planned renovation or refurbishment work.",
			},
			{
				Question: "Do I need an asbestos survey for a property built after 2000?",
				Answer:   "Generally no. The UK banned all forms of asbestos by November 1999, so buildings constructed entirely after this date should not contain asbestos. If there is any uncertainty about the construction date, a survey may still be advisable.",
			},
		},
	},
	"asbestos-removal": {
		MetaTitle: "Licensed Asbestos Removal Hampshire — HSE Licensed Contractors",
		MetaDesc:  "HSE-licensed asbestos removal in Hampshire. Safe extraction of all asbestos types by trained operatives. Full compliance with HSG248 and the Control of Asbestos Regulations 2012.",
		Hero:      "Licensed Asbestos Removal in Hampshire",
		Intro: []string{
			"We hold a full HSE licence for the removal of all types of asbestos-containing materials, including high-risk materials such as sprayed coatings, asbestos insulation board (AIB), and pipe lagging. Our removal operatives are trained, medically certified, and work in strict compliance with HSG248 and the Control of Asbestos Regulations 2012.",
		},
		Features: []string{
			"Licensed removal of sprayed coatings, AIB, and lagging",
			"Non-licensed removal of cement products and textured coatings",
			"Full enclosure and negative pressure working",
			"Independent four-stage clearance on licensed work",
			"Air monitoring throughout removal works",
			"HSE notification handling (ASB5)",
		},
		Process: []ProcessStep{
			{Title: "Scoping & Plan of Work", Desc: "We prepare a detailed plan of work covering the removal method, enclosure design, and waste route."},
			{Title: "Notification", Desc: "Licensed work is notified to the HSE at least 14 days before it starts; notifiable non-licensed work is notified online."},
			{Title: "Controlled Removal", Desc: "Operatives remove the material under controlled conditions with continuous air monitoring."},
			{Title: "Clearance & Handover", Desc: "An independent analyst carries out the four-stage clearance before the area is handed back."},
		},
		FAQs: []FAQ{
			{
				Question: "How long does asbestos removal take?",
				Answer:   "A small non-licensed job such as a garage roof can be completed in a day. Licensed removal requires a 14-day HSE notification period before work starts, and the removal itself can take from a few days to several weeks depending on scale.",
			},
			{
				Question: "Can I stay in my property during asbestos removal?",
				Answer:   "For small exterior works you can usually remain in the property. For interior licensed removal the work area is fully enclosed and you may need to vacate part or all of the property until clearance is complete.",
			},
		},
	},
	"asbestos-encapsulation": {
		MetaTitle: "Asbestos Encapsulation Hampshire — Safe In-Situ Management",
		MetaDesc:  "Professional asbestos encapsulation in Hampshire. Safe in-situ treatment of asbestos-containing materials where removal is not required or practical.",
		Hero:      "Asbestos Encapsulation Services in Hampshire",
		Intro: []string{
			"Encapsulation seals asbestos-containing materials in place, preventing fibre release without the cost and disruption of full removal. Where a material is in good condition and unlikely to be disturbed, encapsulation is often the safest and most economical management option recommended under the duty to manage.",
		},
		Features: []string{
			"Penetrating and bridging encapsulant systems",
			"Mechanical protection for high-traffic areas",
			"Condition assessment before treatment",
			"Labelling and register updates after treatment",
			"Ongoing re-inspection scheduling",
		},
		Process: []ProcessStep{
			{Title: "Condition Assessment", Desc: "We assess whether the material is suitable for encapsulation or whether removal is required."},
			{Title: "Surface Preparation", Desc: "The material is carefully prepared under controlled conditions to accept the encapsulant."},
			{Title: "Encapsulant Application", Desc: "The appropriate coating system is applied and inspected for full coverage."},
			{Title: "Register Update", Desc: "The asbestos register is updated and a re-inspection schedule agreed."},
		},
		FAQs: []FAQ{
			{
				Question: "Is encapsulation as safe as removal?",
				Answer:   "When the material is in good condition and unlikely to be disturbed, encapsulation managed under a proper re-inspection regime is a recognised and safe management option. Removal becomes necessary when the material is damaged or when planned works will disturb it.",
			},
		},
	},
	"asbestos-sampling": {
		MetaTitle: "Asbestos Sampling Hampshire — Bulk Sampling & Air Monitoring",
		MetaDesc:  "Accurate asbestos bulk sampling and air monitoring across Hampshire. UKAS-accredited laboratory analysis with rapid turnaround.",
		Hero:      "Asbestos Sampling Across Hampshire",
		Intro: []string{
			"Suspected a material might contain asbestos? Our sampling service gives you a definitive answer. We collect bulk samples under controlled conditions and have them analysed at a UKAS-accredited laboratory, with results typically available within 24 hours.",
		},
		Features: []string{
			"Bulk sampling of suspect materials",
			"Background, leak, and reassurance air monitoring",
			"UKAS-accredited laboratory analysis",
			"24-hour standard turnaround",
			"Clear reporting with recommendations",
		},
		Process: []ProcessStep{
			{Title: "Sample Collection", Desc: "A trained surveyor collects a representative sample under controlled conditions, sealing the sample point afterwards."},
			{Title: "Laboratory Analysis", Desc: "Samples are analysed by polarised light microscopy at a UKAS-accredited laboratory."},
			{Title: "Results & Advice", Desc: "You receive the certificate of analysis with plain-English advice on what to do next."},
		},
		FAQs: []FAQ{
			{
				Question: "Can I take a sample myself?",
				Answer:   "We strongly advise against it. Disturbing an asbestos-containing material without controls can release fibres. Professional sampling is inexpensive and removes the risk.",
			},
		},
	},
	"asbestos-testing": {
		MetaTitle: "Asbestos Testing Hampshire — UKAS-Accredited Analysis",
		MetaDesc:  "UKAS-accredited asbestos testing in Hampshire. Laboratory analysis of suspected asbestos-containing materials with rapid turnaround and detailed reporting.",
		Hero:      "UKAS-Accredited Asbestos Testing",
		Intro: []string{
			"All of our testing is carried out by UKAS-accredited laboratories using polarised light microscopy, the recognised method for identifying asbestos fibre types in bulk materials. Results identify the asbestos type present — chrysotile, amosite, or crocidolite — so the right management or removal approach can be chosen.",
		},
		Features: []string{
			"Polarised light microscopy (PLM) analysis",
			"Identification of all regulated fibre types",
			"Certificates of analysis for every sample",
			"Same-day and next-day turnaround options",
		},
		Process: []ProcessStep{
			{Title: "Sample Receipt", Desc: "Samples arrive at the laboratory in sealed, labelled containers with a full chain of custody."},
			{Title: "Microscopy", Desc: "An analyst examines the sample by PLM to identify fibre types present."},
			{Title: "Certification", Desc: "A certificate of analysis is issued, typically within 24 hours of receipt."},
		},
		FAQs: []FAQ{
			{
				Question: "How quickly can I get test results?",
				Answer:   "Standard turnaround is 24 hours from laboratory receipt. Same-day analysis is available for urgent cases.",
			},
		},
	},
	"asbestos-disposal": {
		MetaTitle: "Asbestos Disposal Hampshire — Licensed Hazardous Waste Carrier",
		MetaDesc:  "Environment Agency licensed asbestos disposal across Hampshire. Approved hazardous waste facilities, full consignment note tracking, and audit-ready documentation.",
		Hero:      "Licensed Asbestos Disposal in Hampshire",
		Intro: []string{
			"Asbestos waste is hazardous waste and must be transported by a licensed carrier to an approved facility. We are registered with the Environment Agency as a hazardous waste carrier and provide full consignment note documentation for every collection, giving you an audit-ready paper trail from site to landfill.",
		},
		Features: []string{
			"Environment Agency registered waste carrier",
			"Double-bagged and sealed waste handling",
			"Hazardous waste consignment notes for every load",
			"Collection from site or our removal works",
			"Disposal at approved hazardous waste facilities",
		},
		Process: []ProcessStep{
			{Title: "Waste Packaging", Desc: "Waste is double-bagged in UN-approved packaging and sealed before leaving the work area."},
			{Title: "Consignment", Desc: "A hazardous waste consignment note is raised covering the waste type, quantity, and destination."},
			{Title: "Licensed Transport", Desc: "Waste travels in a sealed, licensed vehicle directly to an approved facility."},
			{Title: "Documentation", Desc: "You receive copies of all consignment notes for your records."},
		},
		FAQs: []FAQ{
			{
				Question: "How do I dispose of asbestos waste legally?",
				Answer:   "Asbestos waste must be double-bagged in approved packaging, transported by a registered hazardous waste carrier, and taken to a licensed facility. A consignment note must accompany the waste and copies must be kept for at least three years.",
			},
		},
	},
}
