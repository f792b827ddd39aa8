package routes

import (
	"wandervoice/assistant"
	"wandervoice/catalog"
	"wandervoice/itinerary"
	"wandervoice/middleware"
	"wandervoice/profile"
	"wandervoice/ratelim"
	"wandervoice/reviews"
	"wandervoice/search"
	"wandervoice/tripplan"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/destinations", rateLimiter.Limit(catalog.GetDestinations))
	router.GET("/api/destinations/:destinationid", catalog.GetDestination)
	router.GET("/api/activities", rateLimiter.Limit(catalog.GetActivities))
	router.GET("/api/activities/:activityid", catalog.GetActivity)
	router.GET("/api/hotels", rateLimiter.Limit(catalog.GetHotels))
	router.GET("/api/hotels/:hotelid", catalog.GetHotel)
	router.GET("/api/places", rateLimiter.Limit(catalog.GetPlaces))
	router.GET("/api/places/:placeid", catalog.GetPlace)
	router.GET("/api/restaurants", rateLimiter.Limit(catalog.GetRestaurants))
	router.GET("/api/restaurants/:restaurantid", catalog.GetRestaurant)

	router.POST("/api/admin/catalog/:entitytype", middleware.Authenticate(middleware.AdminOnly(catalog.CreateEntity)))
	router.PUT("/api/admin/catalog/:entitytype/:entityid", middleware.Authenticate(middleware.AdminOnly(catalog.UpdateEntity)))
	router.DELETE("/api/admin/catalog/:entitytype/:entityid", middleware.Authenticate(middleware.AdminOnly(catalog.DeleteEntity)))
}

func AddSearchRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, svc *search.Service) {
	router.GET("/api/search", rateLimiter.Limit(svc.HandleSearch))
}

func AddAssistantRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, a *assistant.Assistant) {
	router.POST("/api/assistant/chat", rateLimiter.Limit(a.HandleChat))
	router.GET("/api/assistant/history/:sessionid", a.GetHistory)
	router.GET("/ws/assistant/:sessionid", a.HandleChatSocket)
}

func AddPlanRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, api *itinerary.API) {
	router.POST("/api/plan/items", rateLimiter.Limit(api.AddItem))
	router.DELETE("/api/plan/items/:itemid", api.RemoveItem)
	router.POST("/api/plan/items/:itemid/move", api.MoveItem)
	router.POST("/api/plan/items/:itemid/reorder", api.ReorderItem)
	router.GET("/api/plan/days/:day", api.GetDay)
	router.GET("/api/plan", api.GetPlan)
	router.DELETE("/api/plan", api.ClearPlan)
}

func AddItineraryRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, api *itinerary.API) {
	router.POST("/api/itineraries", middleware.Authenticate(api.SaveItinerary))
	router.GET("/api/itineraries", middleware.Authenticate(api.GetItineraries))
	router.GET("/api/itineraries/:itineraryid", middleware.Authenticate(api.GetItinerary))
	router.DELETE("/api/itineraries/:itineraryid", middleware.Authenticate(api.DeleteItinerary))
	router.GET("/api/itineraries/:itineraryid/print", rateLimiter.Limit(api.PrintItinerary))
}

func AddTripPlanRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, h *tripplan.Handler) {
	router.POST("/api/generate-trip-plan", rateLimiter.Limit(h.GeneratePlan))
}

func AddReviewsRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/reviews/:entitytype/:entityid", reviews.GetReviews)
	router.GET("/api/reviews/:entitytype/:entityid/summary", reviews.GetReviewSummary)
	router.POST("/api/reviews/:entitytype/:entityid", rateLimiter.Limit(middleware.Authenticate(reviews.AddReview)))
	router.PUT("/api/reviews/:entitytype/:entityid/:reviewid", middleware.Authenticate(reviews.EditReview))
	router.DELETE("/api/reviews/:entitytype/:entityid/:reviewid", middleware.Authenticate(reviews.DeleteReview))
}

func AddProfileRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/profile", rateLimiter.Limit(middleware.Authenticate(profile.UpdateProfile)))
}

// Deps carries the stateful components the route groups need.
type Deps struct {
	Search    *search.Service
	Assistant *assistant.Assistant
	Plan      *itinerary.API
	TripPlan  *tripplan.Handler
}

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, deps Deps) {
	AddCatalogRoutes(router, rateLimiter)
	AddSearchRoutes(router, rateLimiter, deps.Search)
	AddAssistantRoutes(router, rateLimiter, deps.Assistant)
	AddPlanRoutes(router, rateLimiter, deps.Plan)
	AddItineraryRoutes(router, rateLimiter, deps.Plan)
	AddTripPlanRoutes(router, rateLimiter, deps.TripPlan)
	AddReviewsRoutes(router, rateLimiter)
	AddProfileRoutes(router, rateLimiter)
}
