package tripplan

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"wandervoice/agi"
	"wandervoice/db"
	"wandervoice/models"
	"wandervoice/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const planTemperature = 0.8

// Handler generates a day-by-day trip plan from the places catalog.
type Handler struct {
	Completer   agi.Completer
	FetchPlaces func(ctx context.Context, province string) ([]models.Place, error)
}

func NewHandler(completer agi.Completer) *Handler {
	return &Handler{
		Completer: completer,
		FetchPlaces: func(ctx context.Context, province string) ([]models.Place, error) {
			return utils.FindAndDecode[models.Place](ctx, db.PlacesCollection, bson.M{"province": province})
		},
	}
}

type planRequest struct {
	Province    string `json:"province"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Style       string `json:"style"`
	TravelStyle string `json:"travelStyle"`
	Budget      any    `json:"budget"`
}

func buildPlanPrompt(req planRequest, placeList string) string {
	style := req.Style
	if style == "" {
		style = req.TravelStyle
	}
	return fmt.Sprintf(`คุณเป็นไกด์ท่องเที่ยว AI ผู้เชี่ยวชาญ
โปรดวางแผนเที่ยวจังหวัด %s ตั้งแต่วันที่ %s ถึง %s
สำหรับสไตล์ "%s" งบประมาณ: %v บาท/วัน
สถานที่ที่สามารถเลือกได้: %s

กรุณาวางแผนรายวัน เช่น:
วันที่ 1:
- สถานที่...
- เวลา...
- คำแนะนำ...
วันที่ 2:
- ...
ให้มีเวลาโดยประมาณ การเดินทางระหว่างจุด และคำแนะนำร้านอาหารท้องถิ่น`,
		req.Province, req.StartDate, req.EndDate, style, req.Budget, placeList)
}

// POST /api/generate-trip-plan
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	style := req.Style
	if style == "" {
		style = req.TravelStyle
	}
	if req.Province == "" || req.StartDate == "" || req.EndDate == "" || style == "" || req.Budget == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing input")
		return
	}
	if h.Completer == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "OPENAI_API_KEY is not configured on the server")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	places, err := h.FetchPlaces(ctx, req.Province)
	if err != nil {
		log.Println("Trip plan places fetch error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch places")
		return
	}

	placeList := "ไม่มีข้อมูลสถานที่"
	if len(places) > 0 {
		names := make([]string, 0, len(places))
		for _, p := range places {
			names = append(names, p.Name)
		}
		placeList = strings.Join(names, ", ")
	}

	plan, err := h.Completer.Complete(ctx, agi.Request{
		Model:       agi.PlannerModel,
		Temperature: planTemperature,
		Messages: []agi.ChatMessage{
			{Role: agi.RoleUser, Content: buildPlanPrompt(req, placeList)},
		},
	})
	if err != nil {
		log.Println("Trip plan generation error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "AI generation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"plan": plan})
}
