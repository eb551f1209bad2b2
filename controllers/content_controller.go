package controllers

import (
	"net/http"

	"hotel-website/content"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

type ContentController struct{}

func NewContentController() *ContentController {
	return &ContentController{}
}

// GetPage serves a marketing page's copy by slug, bundling the data the page
// renders (amenity list, gallery images, contact details, testimonials).
func (cc *ContentController) GetPage(c *gin.Context) {
	slug := c.Param("slug")
	page, ok := content.PageBySlug(slug)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "page not found")
		return
	}

	payload := gin.H{"page": page}
	switch slug {
	case "home":
		payload["testimonials"] = content.Testimonials
		payload["featured_rooms"] = content.ShowcaseRooms
	case "amenities":
		payload["amenities"] = content.AmenitiesList
	case "gallery":
		payload["images"] = content.GalleryImages
	case "contact":
		payload["contact"] = content.ContactDetails
	}
	utils.JSONSuccess(c, http.StatusOK, payload)
}

// GetMenu serves the food and drink menus.
func (cc *ContentController) GetMenu(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"food":   content.FoodMenu,
		"drinks": content.DrinkMenu,
	})
}
