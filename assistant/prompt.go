package assistant

import (
	"encoding/json"
	"strings"
	"wandervoice/agi"
	"wandervoice/models"

	"github.com/samber/lo"
)

// Only this many prior turns are sent to the model.
const MaxHistorySent = 8

// Travel-expert persona with strict grounding rules. Thai-first, matching
// the product's primary audience.
const systemPrompt = `คุณคือผู้เชี่ยวชาญด้านการท่องเที่ยว พูดไทยเป็นหลัก (คุยอังกฤษได้เมื่อผู้ใช้เริ่มก่อน)
โทน: เป็นมิตร สุภาพ กระชับ เข้าใจง่าย เหมือนเพื่อนที่เก่งเรื่องทริป

หน้าที่:
- คุยเล่น/ทักทาย/เก็บบริบทความชอบได้เป็นธรรมชาติ
- เมื่อให้ "คำแนะนำ" เกี่ยวกับสถานที่/กิจกรรม/โรงแรม/ร้านอาหาร:
  • อ้างอิงจากข้อมูลฐาน (ที่จะถูกแนบให้) เป็นหลัก
  • ถ้าข้อมูลฐานไม่พอ ให้ถามต่อเพื่อจำกัดโจทย์ (เมือง/วันที่/งบ/สไตล์) หรือบอกว่าไม่พบในฐาน
  • ห้ามเดามั่ว/แต่งข้อมูลที่ไม่อยู่ในฐาน

การนำเสนอ:
- สรุปเป็นหัวข้อสั้น ๆ อ่านเร็ว (เช่น bullet/ลำดับ)
- ใส่เหตุผล/จุดเด่นสั้น ๆ หากเหมาะสม`

// AllowedNames is the exact allow-list of entity names the model may mention
// for one turn: every retrieved name and nothing else.
func AllowedNames(results models.SearchResults) []string {
	names := make([]string, 0, results.Total())
	names = append(names, lo.Map(results.Destinations, func(d models.Destination, _ int) string { return d.Name })...)
	names = append(names, lo.Map(results.Activities, func(a models.Activity, _ int) string { return a.Name })...)
	names = append(names, lo.Map(results.Hotels, func(h models.Hotel, _ int) string { return h.Name })...)
	names = append(names, lo.Map(results.Places, func(p models.Place, _ int) string { return p.Name })...)
	names = append(names, lo.Map(results.Restaurants, func(r models.Restaurant, _ int) string { return r.Name })...)
	return names
}

// compactProjection keeps the grounding payload small: id + name + a couple
// of identifying fields per collection.
func compactProjection(results models.SearchResults) map[string]any {
	return map[string]any{
		"destinations": lo.Map(results.Destinations, func(d models.Destination, _ int) map[string]any {
			return map[string]any{"id": d.DestinationID, "name": d.Name, "country": d.Country}
		}),
		"activities": lo.Map(results.Activities, func(a models.Activity, _ int) map[string]any {
			return map[string]any{"id": a.ActivityID, "name": a.Name, "category": a.Category}
		}),
		"hotels": lo.Map(results.Hotels, func(h models.Hotel, _ int) map[string]any {
			return map[string]any{"id": h.HotelID, "name": h.Name}
		}),
		"places": lo.Map(results.Places, func(p models.Place, _ int) map[string]any {
			return map[string]any{"id": p.PlaceID, "name": p.Name, "category": p.Category}
		}),
		"restaurants": lo.Map(results.Restaurants, func(r models.Restaurant, _ int) map[string]any {
			return map[string]any{"id": r.RestaurantID, "name": r.Name, "cuisine": r.Cuisine}
		}),
	}
}

func groundingMessage(results models.SearchResults) agi.ChatMessage {
	projJSON, _ := json.Marshal(compactProjection(results))
	allowedJSON, _ := json.Marshal(AllowedNames(results))

	content := strings.Join([]string{
		"ข้อมูลที่เกี่ยวข้องจากฐาน (JSON แบบย่อ):",
		string(projJSON),
		"",
		"ALLOWED_NAMES (รายชื่อที่อนุญาตให้กล่าวถึงเท่านั้น):",
		string(allowedJSON),
		"",
		"ข้อกำชับเข้มงวด:",
		"- ห้ามกล่าวถึงชื่อสถานที่/ที่พัก/กิจกรรม/ร้านอาหารที่ไม่อยู่ใน ALLOWED_NAMES",
		`- หากไม่มีชื่อที่ตรง ให้ตอบว่า "ไม่พบในฐานข้อมูล" และ/หรือถามต่อเพื่อจำกัดโจทย์`,
		"- ห้ามเดา/ห้ามแต่งข้อมูลใหม่",
	}, "\n")

	return agi.ChatMessage{Role: agi.RoleSystem, Content: content}
}

// BuildModelMessages assembles one completion payload:
// persona system message, the most recent MaxHistorySent prior turns, the
// new user message, and (only when grounding data exists) the grounding
// system message.
func BuildModelMessages(history []models.ChatMessage, userMessage string, results *models.SearchResults) []agi.ChatMessage {
	if len(history) > MaxHistorySent {
		history = history[len(history)-MaxHistorySent:]
	}

	msgs := make([]agi.ChatMessage, 0, len(history)+3)
	msgs = append(msgs, agi.ChatMessage{Role: agi.RoleSystem, Content: systemPrompt})
	for _, m := range history {
		msgs = append(msgs, agi.ChatMessage{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, agi.ChatMessage{Role: agi.RoleUser, Content: userMessage})
	if results != nil {
		msgs = append(msgs, groundingMessage(*results))
	}
	return msgs
}
