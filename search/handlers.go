package search

import (
	"context"
	"net/http"
	"strings"
	"time"
	"wandervoice/models"
	"wandervoice/rdx"
	"wandervoice/utils"

	"github.com/julienschmidt/httprouter"
)

const cacheTTL = 60 * time.Second

// GET /api/search?q=QUERY
func (s *Service) HandleSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing query")
		return
	}

	cacheKey := "search:" + strings.ToLower(query)
	var cached models.SearchResults
	if rdx.GetInto(cacheKey, &cached) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"results": cached,
			"total":   cached.Total(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	results := s.Search(ctx, query)
	rdx.SetWithExpiry(cacheKey, results, cacheTTL)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"results": results,
		"total":   results.Total(),
	})
}
