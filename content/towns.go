package content

// Town is an areas-we-cover profile. Anchor is the fragment identifier used
// for in-page navigation on the coverage page.
type Town struct {
	Name          string
	Anchor        string
	Summary       string
	PropertyTypes string
}

// Towns profiles the Hampshire towns on the areas-we-cover page, in display
// order.
var Towns = []Town{
	{
		Name:          "Southampton",
		Anchor:        "southampton",
		Summary:       "As Hampshire's largest city and a major international port, Southampton has a diverse building stock spanning centuries of development. Much of the post-war rebuilding took place during the peak years of asbestos use in UK construction between the 1950s and 1980s, and the city's commercial district, waterfront developments, and residential areas from Shirley to Woolston commonly contain asbestos in sprayed coatings, insulation board, textured coatings, and floor tiles.",
		PropertyTypes: "Commercial offices, industrial units, port facilities, residential properties, university buildings, NHS hospitals, schools, and retail centres.",
	},
	{
		Name:          "Portsmouth",
		Anchor:        "portsmouth",
		Summary:       "Portsmouth's island geography and its historic role as Britain's principal naval base have created a built environment with a high concentration of military, industrial, and residential properties from periods when asbestos was extensively used. The naval dockyard presents some of the most complex asbestos management challenges in Hampshire, while post-war housing in Fratton, Copnor, and North End and refurbished Victorian properties in Southsea frequently reveal hidden ACMs.",
		PropertyTypes: "Ministry of Defence properties, dockyard buildings, residential estates, Victorian conversions, commercial centres, educational facilities, and healthcare buildings.",
	},
	{
		Name:          "Winchester",
		Anchor:        "winchester",
		Summary:       "While Winchester's historic centre largely pre-dates asbestos use, the city's 20th-century expansion into Stanmore, Weeke, and Badger Farm coincided with the peak period of asbestos use. The city's schools and colleges, many built or extended in the 1960s and 1970s using system-build methods, along with commercial properties around Winnall and the M3 corridor, represent significant ongoing duty-to-manage obligations.",
		PropertyTypes: "Listed buildings, schools, university facilities, offices, county council buildings, residential properties, and healthcare facilities.",
	},
	{
		Name:          "Basingstoke",
		Anchor:        "basingstoke",
		Summary:       "Basingstoke transformed from a market town into a major commercial centre following its designation as a London overspill town in the 1960s, with vast quantities of commercial and residential building during the decades of heaviest asbestos use. Basing View's offices, the town's shopping centres, and the large estates at Popley, Brighton Hill, South Ham, and Chineham all require ongoing asbestos management or pre-refurbishment surveys.",
		PropertyTypes: "Office parks, retail centres, industrial estates, residential estates, schools, leisure facilities, and healthcare buildings.",
	},
	{
		Name:          "Andover",
		Anchor:        "andover",
		Summary:       "Andover expanded rapidly as a 1960s expansion town, leaving industrial estates at Walworth and Portway with buildings that commonly incorporated asbestos, alongside defence-related properties and mid-century housing estates at Millway, Charlton, and Kings Chase. The rural Test Valley also brings frequent encounters with asbestos cement roofing on agricultural outbuildings.",
		PropertyTypes: "Military establishments, industrial parks, residential estates, schools, community buildings, and commercial premises.",
	},
	{
		Name:          "Farnborough",
		Anchor:        "farnborough",
		Summary:       "Farnborough's aviation heritage has left a legacy of industrial, research, and military buildings spanning the entire 20th century. The former Royal Aircraft Establishment contained extensive asbestos across its hangars and laboratories, and survey work continues across the business park and adjacent older buildings, alongside the town's mix of Victorian, inter-war, and post-war housing.",
		PropertyTypes: "Aerospace facilities, industrial units, commercial offices, business parks, residential properties, and Ministry of Defence sites.",
	},
	{
		Name:          "Aldershot",
		Anchor:        "aldershot",
		Summary:       "Home of the British Army since 1854, Aldershot concentrates military infrastructure alongside civilian properties, with many mid-20th-century garrison buildings containing significant asbestos. The Wellesley redevelopment of former Ministry of Defence land and the regeneration of the town centre keep demand for pre-work assessments and licensed removal consistently high.",
		PropertyTypes: "Military barracks and facilities, regeneration sites, Victorian residential properties, post-war housing, commercial premises, and public buildings.",
	},
	{
		Name:          "Eastleigh",
		Anchor:        "eastleigh",
		Summary:       "Eastleigh grew around the railway works established in the late 19th century, and that industrial legacy left a concentration of older buildings where asbestos was used extensively for insulation and fire protection. Residential areas from Chandler's Ford to Fair Oak contain housing from Victorian railway cottages to 1980s estates, with pre-2000 properties commonly requiring assessment before renovation.",
		PropertyTypes: "Railway heritage buildings, industrial units, commercial premises, airport facilities, residential properties, and council housing stock.",
	},
	{
		Name:          "Fareham",
		Anchor:        "fareham",
		Summary:       "Positioned between Southampton and Portsmouth at the head of Portsmouth Harbour, Fareham saw significant military and industrial activity around the former HMS Collingwood and continuous 20th-century development. Town centre regeneration and the modernisation of inter-war and post-war housing in Portchester, Stubbington, and Titchfield drive steady demand for refurbishment surveys.",
		PropertyTypes: "Naval establishments, residential estates, commercial centres, light industrial units, schools, and healthcare facilities.",
	},
	{
		Name:          "Havant",
		Anchor:        "havant",
		Summary:       "Havant borough includes Leigh Park, one of the largest post-war social housing estates in Britain, built during the peak period of asbestos use. Commercial estates along New Lane, coastal properties at Emsworth and Hayling Island, and former boat-building workshops add marine-grade asbestos products and weathered exterior ACMs to the borough's survey workload.",
		PropertyTypes: "Council housing estates, commercial developments, industrial parks, coastal properties, schools, and community facilities.",
	},
	{
		Name:          "Gosport",
		Anchor:        "gosport",
		Summary:       "Gosport's naval heritage, including the former HMS Sultan and Haslar Hospital, means a high concentration of institutional buildings containing asbestos from multiple periods. Waterfront regeneration and conversions of former military sites to residential use require thorough pre-refurbishment surveys, while the Rowner regeneration highlighted the extent of asbestos in the town's mid-century housing.",
		PropertyTypes: "Naval establishments, waterfront regeneration sites, residential areas, healthcare facilities, educational buildings, and commercial properties.",
	},
	{
		Name:          "Fleet",
		Anchor:        "fleet",
		Summary:       "Fleet is one of Hampshire's most prosperous towns, and while many of its newer developments post-date the asbestos era, it retains substantial 1960s-to-1990s property where asbestos materials are commonly present. Renovations, extensions, and loft conversions in Church Crookham and the established streets around Fleet Pond frequently require pre-refurbishment surveys.",
		PropertyTypes: "Residential properties, commercial offices, schools, retail premises, leisure facilities, and business parks.",
	},
	{
		Name:          "Petersfield",
		Anchor:        "petersfield",
		Summary:       "A historic market town on the edge of the South Downs, Petersfield mixes Georgian and Victorian buildings refurbished over the decades with rural agricultural structures where asbestos cement roofing was extensively used. Barn conversions and rural renovations in the area almost always require asbestos surveys before work can safely commence.",
		PropertyTypes: "Historic town centre properties, agricultural buildings, barn conversions, residential developments, schools, and commercial premises.",
	},
	{
		Name:          "Waterlooville",
		Anchor:        "waterlooville",
		Summary:       "Waterlooville's building stock dates mostly from the 1960s onwards, squarely within the peak period of asbestos use. Post-war housing in Cowplain, Purbrook, and Stakes commonly contains asbestos in textured coatings, floor tiles, and soffit boards, and the conversion of older retail units into mixed-use developments regularly disturbs original building fabric for the first time.",
		PropertyTypes: "Retail centres, residential estates, light industrial units, schools, healthcare buildings, and commercial offices.",
	},
}
