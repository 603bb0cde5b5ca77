package handler

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gear-catalog-service/internal/app/service"
)

// SitemapHandler serves crawler-facing documents.
type SitemapHandler struct {
	service *service.SitemapService
	baseURL string
	logger  *zap.Logger
}

// NewSitemapHandler creates a new SitemapHandler.
func NewSitemapHandler(svc *service.SitemapService, baseURL string, logger *zap.Logger) *SitemapHandler {
	return &SitemapHandler{
		service: svc,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// urlSet is the sitemap protocol document root.
type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap handles GET /sitemap.xml
func (h *SitemapHandler) Sitemap(c *fiber.Ctx) error {
	entries, err := h.service.Build(c.Context())
	if err != nil {
		h.logger.Error("sitemap build failed", zap.Error(err))

		return fiber.NewError(fiber.StatusInternalServerError, "sitemap unavailable")
	}

	doc := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlXML, len(entries)),
	}
	for i, e := range entries {
		doc.URLs[i] = urlXML{
			Loc:        e.Loc,
			LastMod:    e.LastMod.Format(time.RFC3339),
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', -1, 64),
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "sitemap unavailable")
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")

	return c.SendString(xml.Header + string(out))
}

// Robots handles GET /robots.txt
func (h *SitemapHandler) Robots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

	return c.SendString(
		"User-agent: *\n" +
			"Allow: /\n" +
			"Disallow: /api/\n" +
			"\n" +
			"Sitemap: " + h.baseURL + "/sitemap.xml\n",
	)
}
