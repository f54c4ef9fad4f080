// Package content holds the static site copy: the services catalogue,
// Hampshire town profiles, FAQ entries, navigation, and the route table the
// sitemap is generated from. Business identity values (site name, phone,
// email) live in config so they can be overridden per environment; everything
// here is fixed editorial content.
package content

// City is a Hampshire location rendered on the coverage map.
type City struct {
	Name string
	Lat  float64
	Lng  float64
}

// Cities lists the primary Hampshire locations we serve, with coordinates
// for the coverage map.
var Cities = []City{
	{Name: "Southampton", Lat: 50.9097, Lng: -1.4044},
	{Name: "Portsmouth", Lat: 50.8198, Lng: -1.0880},
	{Name: "Winchester", Lat: 51.0632, Lng: -1.3080},
	{Name: "Basingstoke", Lat: 51.2667, Lng: -1.0876},
	{Name: "Andover", Lat: 51.2113, Lng: -1.4908},
	{Name: "Farnborough", Lat: 51.2920, Lng: -0.7536},
	{Name: "Aldershot", Lat: 51.2485, Lng: -0.7638},
	{Name: "Eastleigh", Lat: 50.9690, Lng: -1.3508},
	{Name: "Fareham", Lat: 50.8518, Lng: -1.1783},
	{Name: "Havant", Lat: 50.8518, Lng: -0.9842},
	{Name: "Gosport", Lat: 50.7948, Lng: -1.1243},
	{Name: "Fleet", Lat: 51.2835, Lng: -0.8463},
	{Name: "Petersfield", Lat: 51.0038, Lng: -0.9365},
	{Name: "Waterlooville", Lat: 50.8800, Lng: -1.0300},
}

// NavLink is a header navigation entry. Links with Children render as a
// dropdown.
type NavLink struct {
	Label    string
	Href     string
	Children []NavLink
}

// NavLinks returns the site navigation. Built as a function rather than a
// package var so the services dropdown always reflects the catalogue.
func NavLinks() []NavLink {
	services := make([]NavLink, len(Services))
	for i, s := range Services {
		services[i] = NavLink{Label: s.Title, Href: "/services/" + s.Slug}
	}

	return []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "About Us", Href: "/about-us"},
		{Label: "Services", Href: "/services", Children: services},
		{Label: "Hampshire", Href: "/hampshire"},
		{Label: "Compliance", Href: "/compliance-licensing"},
		{Label: "Health & Safety", Href: "/health-safety"},
		{Label: "FAQs", Href: "/faqs"},
		{Label: "Contact", Href: "/contact"},
	}
}

// Route is a sitemap entry. Path is relative to the site URL.
type Route struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

// Routes returns every indexable page, static pages first then one entry per
// service detail page.
func Routes() []Route {
	routes := []Route{
		{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
		{Path: "/about-us", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/services", ChangeFreq: "weekly", Priority: 0.9},
		{Path: "/hampshire", ChangeFreq: "monthly", Priority: 0.9},
		{Path: "/hampshire/areas-we-cover", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/compliance-licensing", ChangeFreq: "monthly", Priority: 0.7},
		{Path: "/health-safety", ChangeFreq: "monthly", Priority: 0.6},
		{Path: "/faqs", ChangeFreq: "monthly", Priority: 0.7},
		{Path: "/contact", ChangeFreq: "monthly", Priority: 0.8},
	}
	for _, s := range Services {
		routes = append(routes, Route{Path: "/services/" + s.Slug, ChangeFreq: "monthly", Priority: 0.8})
	}
	return routes
}
