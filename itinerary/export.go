package itinerary

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"
	"wandervoice/db"
	"wandervoice/globals"
	"wandervoice/models"
	"wandervoice/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// shareCode returns a signed payload for the QR on the printed itinerary:
// itineraryID|timestamp|signature.
func shareCode(itineraryID string) string {
	data := fmt.Sprintf("%s|%d", itineraryID, time.Now().Unix())

	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/itineraries/:itineraryid/print
func (api *API) PrintItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	itineraryID := ps.ByName("itineraryid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var itin models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{
		"itineraryid": itineraryID,
		"user_id":     userID,
		"deleted":     bson.M{"$ne": true},
	}).Decode(&itin)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "day_number", Value: 1},
		{Key: "order_index", Value: 1},
	})
	items, err := utils.FindAndDecode[models.SavedItineraryItem](ctx, db.ItineraryItemsCollection,
		bson.M{"itinerary_id": itineraryID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itinerary items")
		return
	}

	qrPNG, err := qrcode.Encode(shareCode(itineraryID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Trip Itinerary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Name: %s", itin.Name))
	pdf.Ln(8)
	if itin.StartDate != "" || itin.EndDate != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Dates: %s - %s", itin.StartDate, itin.EndDate))
		pdf.Ln(8)
	}
	if itin.Style != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Style: %s", itin.Style))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	currentDay := 0
	for _, it := range items {
		if it.DayNumber != currentDay {
			currentDay = it.DayNumber
			pdf.SetFont("Arial", "B", 13)
			pdf.Cell(0, 10, fmt.Sprintf("Day %d", currentDay))
			pdf.Ln(8)
			pdf.SetFont("Arial", "", 12)
		}
		pdf.Cell(0, 8, fmt.Sprintf("  %d. %s (%s)", it.OrderIndex+1, it.Name, it.ItemType))
		pdf.Ln(7)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=itinerary-%s.pdf", itineraryID))
	w.Write(buf.Bytes())
}
