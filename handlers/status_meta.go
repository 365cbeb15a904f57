package handlers

import (
	"net/http"

	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
)

// GetStatusCatalogue lists the legal status values per resource. Handy for
// client dropdowns and API exploration; these are exactly the values the
// update endpoints accept.
func GetStatusCatalogue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"roles": []models.UserRole{
			models.RoleUser, models.RoleNGO, models.RoleRestaurant, models.RoleAdmin,
		},
		"menu_items": []models.MenuItemStatus{
			models.ItemAvailable, models.ItemReserved, models.ItemExpired, models.ItemCollected,
		},
		"pickups": []models.PickupStatus{
			models.PickupPending, models.PickupAccepted, models.PickupRejected,
			models.PickupCompleted, models.PickupCancelled,
		},
		"volunteers": []models.VolunteerStatus{
			models.VolunteerSubmitted, models.VolunteerVerified, models.VolunteerRejected,
		},
		"partnership_types": []models.PartnershipType{
			models.PartnerFood, models.PartnerLogistics, models.PartnerNGO, models.PartnerSponsor,
		},
		"partnerships": []models.PartnershipStatus{
			models.PartnershipPending, models.PartnershipApproved, models.PartnershipRejected,
			models.PartnershipActive, models.PartnershipInactive,
		},
		"donation_payments": []models.DonationPaymentStatus{
			models.DonationPaymentPending, models.DonationPaymentCompleted,
			models.DonationPaymentFailed, models.DonationPaymentRefunded,
		},
		"donations": []models.DonationStatus{
			models.DonationActive, models.DonationCancelled, models.DonationRefunded,
		},
	})
}
