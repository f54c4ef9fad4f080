package handlers

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/AsbestosServicesHampshire/ash-backend/config"
	"github.com/AsbestosServicesHampshire/ash-backend/content"
	"github.com/gin-gonic/gin"
)

// PageHandler renders the marketing pages. All page content is static and
// comes from the content package; the business identity values come from
// configuration so they stay consistent with the notification emails.
type PageHandler struct {
	business *config.BusinessConfig
	upload   *config.UploadConfig
}

func NewPageHandler(business *config.BusinessConfig, upload *config.UploadConfig) *PageHandler {
	return &PageHandler{business: business, upload: upload}
}

// pageData builds the template context every page shares, merged with any
// page-specific values.
func (h *PageHandler) pageData(title, desc string, extra gin.H) gin.H {
	data := gin.H{
		"Title":       title,
		"Description": desc,
		"Site":        h.business,
		"Nav":         content.NavLinks(),
		"Year":        time.Now().Year(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", h.pageData(
		h.business.SiteName+" — Surveys, Removal & Testing",
		"Professional asbestos surveys, removal, testing, and disposal across Hampshire. HSE-licensed, BOHS-qualified, free quotes.",
		gin.H{
			"Services": content.Services,
			"Cities":   content.Cities,
		}))
}

func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", h.pageData(
		"About Us — "+h.business.SiteName,
		"Hampshire-based asbestos specialists with BOHS-qualified surveyors and HSE-licensed removal operatives.",
		nil))
}

func (h *PageHandler) ServicesIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "services.tmpl", h.pageData(
		"Asbestos Services in Hampshire",
		"Our full range of asbestos services: surveys, removal, encapsulation, sampling, testing, and disposal.",
		gin.H{"Services": content.Services}))
}

func (h *PageHandler) ServiceDetail(c *gin.Context) {
	slug := c.Param("slug")
	service, detail, ok := content.ServiceBySlug(slug)
	if !ok {
		h.NotFound(c)
		return
	}
	c.HTML(http.StatusOK, "service_detail.tmpl", h.pageData(
		detail.MetaTitle,
		detail.MetaDesc,
		gin.H{
			"Service": service,
			"Detail":  detail,
		}))
}

func (h *PageHandler) Hampshire(c *gin.Context) {
	c.HTML(http.StatusOK, "hampshire.tmpl", h.pageData(
		"Asbestos Services Across Hampshire",
		"Covering the whole of Hampshire, from Southampton and Portsmouth to Basingstoke and the rural districts.",
		gin.H{"Cities": content.Cities}))
}

func (h *PageHandler) AreasWeCover(c *gin.Context) {
	c.HTML(http.StatusOK, "areas.tmpl", h.pageData(
		"Areas We Cover — "+h.business.SiteName,
		"Detailed coverage of the Hampshire towns we serve, from city-centre commercial properties to rural agricultural buildings.",
		gin.H{"Towns": content.Towns}))
}

func (h *PageHandler) Compliance(c *gin.Context) {
	c.HTML(http.StatusOK, "compliance.tmpl", h.pageData(
		"Compliance & Licensing — "+h.business.SiteName,
		"Our HSE licensing, BOHS qualifications, UKAS-accredited analysis, and Environment Agency waste carrier registration.",
		nil))
}

func (h *PageHandler) HealthSafety(c *gin.Context) {
	c.HTML(http.StatusOK, "health_safety.tmpl", h.pageData(
		"Health & Safety — "+h.business.SiteName,
		"How we protect our clients, our operatives, and the public on every asbestos project.",
		nil))
}

func (h *PageHandler) FAQs(c *gin.Context) {
	c.HTML(http.StatusOK, "faqs.tmpl", h.pageData(
		"FAQs — Asbestos Questions Answered",
		"Frequently asked questions about asbestos surveys, removal, testing, and regulations in Hampshire.",
		gin.H{"Categories": content.FAQCategories}))
}

func (h *PageHandler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.tmpl", h.pageData(
		"Contact Us — "+h.business.SiteName,
		"Get a free, no-obligation quote for asbestos surveys, removal, or testing anywhere in Hampshire.",
		gin.H{
			"Services": content.Services,
			"Cities":   content.Cities,
			"Upload":   h.upload,
		}))
}

// NotFound renders the 404 page for unknown routes and unknown service slugs.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", h.pageData(
		"Page Not Found — "+h.business.SiteName,
		"The page you are looking for does not exist.",
		nil))
}

// sitemapURLSet is the XML document shape for sitemap.xml.
type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// Sitemap serves sitemap.xml generated from the route table.
func (h *PageHandler) Sitemap(c *gin.Context) {
	lastMod := time.Now().UTC().Format("2006-01-02")

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, r := range content.Routes() {
		loc := h.business.SiteURL + r.Path
		if r.Path == "/" {
			loc = h.business.SiteURL
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: r.ChangeFreq,
			Priority:   r.Priority,
		})
	}

	c.XML(http.StatusOK, set)
}

// Robots serves robots.txt pointing crawlers at the sitemap.
func (h *PageHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", h.business.SiteURL)
}
