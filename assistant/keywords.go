package assistant

import "wandervoice/utils"

// recoKeywords guesses whether the user is asking for a recommendation.
// Purely lexical, Thai + English; paraphrases slip through and that is
// accepted.
var recoKeywords = []string{
	"แนะนำ",
	"recommend",
	"ไปไหนดี",
	"ที่เที่ยว",
	"เที่ยว",
	"กิจกรรม",
	"โรงแรม",
	"ที่พัก",
	"ร้านอาหาร",
	"กินอะไร",
	"ที่ไหน",
	"plan",
	"itinerary",
	"hotel",
	"activity",
	"restaurant",
	"place",
	"destination",
}

// IsRecommendationIntent is a case-insensitive substring test against the
// keyword list.
func IsRecommendationIntent(text string) bool {
	for _, k := range recoKeywords {
		if utils.ContainsIgnoreCase(text, k) {
			return true
		}
	}
	return false
}
