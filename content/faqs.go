package content

// FAQCategory groups related questions on the FAQs page.
type FAQCategory struct {
	Category string
	FAQs     []FAQ
}

// FAQCategories is the FAQs page content in display order.
var FAQCategories = []FAQCategory{
	{
		Category: "Asbestos Surveys",
		FAQs: []FAQ{
			{
				Question: "What types of asbestos survey are available?",
				Answer:   "There are three types of asbestos survey defined in HSG264: management surveys (to locate and assess ACMs for ongoing management), refurbishment surveys (before any planned renovation work), and demolition surveys (before a building is due to be demolished). The type of survey you need depends on why it is required and what activities are planned for the building.",
			},
			{
				Question: "When is an asbestos survey legally required?",
				Answer:   "Under the Control of Asbestos Regulations 2012, the duty holder for any non-domestic premises has a legal duty to manage asbestos. This requires knowing whether asbestos is present, which typically means a management survey. A refurbishment or demolition survey is required before any work that may disturb the building fabric in properties built before the year 2000.",
			},
			{
				Question: "How quickly can I get a survey appointment?",
				Answer:   "We offer same-week survey appointments across Hampshire as standard. For urgent requirements, we can often accommodate next-day or same-day appointments. Survey reports are typically delivered within 24 hours of the site visit.",
			},
		},
	},
	{
		Category: "Asbestos Removal",
		FAQs: []FAQ{
			{
				Question: "What is the difference between licensed and non-licensed asbestos work?",
				Answer:   "Higher-risk work with materials such as sprayed coatings, asbestos insulation board, and pipe lagging requires an HSE licence and 14-day notification. Lower-risk work with materials such as asbestos cement and textured coatings can be carried out without a licence, though it still requires trained operatives and proper controls.",
			},
			{
				Question: "How long does asbestos removal take?",
				Answer:   "A small non-licensed job such as a garage roof can be completed in a day. Licensed removal requires a 14-day HSE notification period before work starts, and the removal itself can take from a few days to several weeks depending on the scale of the project.",
			},
			{
				Question: "Can I stay in my property during asbestos removal?",
				Answer:   "For small exterior works you can usually remain in the property. For interior licensed removal the work area is fully enclosed under negative pressure, and you may need to vacate part or all of the property until the four-stage clearance is complete.",
			},
		},
	},
	{
		Category: "Testing & Sampling",
		FAQs: []FAQ{
			{
				Question: "How are asbestos samples analysed?",
				Answer:   "Bulk samples are analysed at a UKAS-accredited laboratory using polarised light microscopy (PLM), the recognised method for identifying asbestos fibre types. The analysis identifies whether asbestos is present and which type — chrysotile, amosite, or crocidolite.",
			},
			{
				Question: "How quickly can I get test results?",
				Answer:   "Standard turnaround is 24 hours from laboratory receipt of the sample. Same-day analysis is available for urgent cases.",
			},
			{
				Question: "Is it safe to disturb materials that might contain asbestos?",
				Answer:   "No. If you suspect a material contains asbestos, do not drill, sand, break, or otherwise disturb it. Asbestos is only dangerous when fibres are released into the air. Leave the material alone and arrange professional sampling to confirm whether asbestos is present.",
			},
		},
	},
	{
		Category: "Regulations",
		FAQs: []FAQ{
			{
				Question: "What are the main UK asbestos regulations?",
				Answer:   "The Control of Asbestos Regulations 2012 (CAR 2012) is the primary legislation, supported by HSE guidance including HSG264 (the survey guide) and HSG248 (the analysts' guide). CAR 2012 covers the duty to manage, licensing, training, exposure limits, and waste handling.",
			},
			{
				Question: "What is the duty to manage asbestos?",
				Answer:   "Regulation 4 of CAR 2012 places a duty on whoever controls non-domestic premises to find out whether asbestos is present, assess its condition, keep a register, and prepare a management plan. The duty also applies to the common parts of residential buildings such as flats.",
			},
			{
				Question: "When was asbestos banned in the UK?",
				Answer:   "Blue (crocidolite) and brown (amosite) asbestos were banned in 1985. White asbestos (chrysotile) was banned in November 1999, so any building constructed entirely after 2000 should be asbestos-free.",
			},
		},
	},
	{
		Category: "Working With Us",
		FAQs: []FAQ{
			{
				Question: "Do you offer free quotes?",
				Answer:   "Yes. All quotes are free and without obligation. Send us details through the contact form — photographs of the suspect material help us quote accurately — or call us to discuss your requirements.",
			},
			{
				Question: "What areas of Hampshire do you cover?",
				Answer:   "We cover the whole of Hampshire, including Southampton, Portsmouth, Winchester, Basingstoke, Andover, Farnborough, Aldershot, Eastleigh, Fareham, Havant, Gosport, Fleet, Petersfield, and Waterlooville, plus the surrounding villages and rural areas.",
			},
		},
	},
}
