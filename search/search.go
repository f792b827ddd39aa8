package search

import (
	"context"
	"log"
	"sync"
	"wandervoice/models"
)

// Each collection contributes at most this many results to a bundle.
const ResultLimit = 6

// Service fans a keyword query out across the five catalog collections.
// Fetchers are fields so tests can swap in fixtures.
type Service struct {
	Destinations func(ctx context.Context, query string) ([]models.Destination, error)
	Activities   func(ctx context.Context, query string) ([]models.Activity, error)
	Hotels       func(ctx context.Context, query string) ([]models.Hotel, error)
	Places       func(ctx context.Context, query string) ([]models.Place, error)
	Restaurants  func(ctx context.Context, query string) ([]models.Restaurant, error)
}

// Search issues all five lookups concurrently and waits for every one of
// them before aggregating. A failing collection degrades to an empty list;
// it never aborts the whole bundle.
func (s *Service) Search(ctx context.Context, query string) models.SearchResults {
	var results models.SearchResults
	var wg sync.WaitGroup

	wg.Add(5)
	go func() {
		defer wg.Done()
		out, err := s.Destinations(ctx, query)
		if err != nil {
			log.Println("destination search error:", err)
			return
		}
		results.Destinations = out
	}()
	go func() {
		defer wg.Done()
		out, err := s.Activities(ctx, query)
		if err != nil {
			log.Println("activity search error:", err)
			return
		}
		results.Activities = out
	}()
	go func() {
		defer wg.Done()
		out, err := s.Hotels(ctx, query)
		if err != nil {
			log.Println("hotel search error:", err)
			return
		}
		results.Hotels = out
	}()
	go func() {
		defer wg.Done()
		out, err := s.Places(ctx, query)
		if err != nil {
			log.Println("place search error:", err)
			return
		}
		results.Places = out
	}()
	go func() {
		defer wg.Done()
		out, err := s.Restaurants(ctx, query)
		if err != nil {
			log.Println("restaurant search error:", err)
			return
		}
		results.Restaurants = out
	}()
	wg.Wait()

	return results
}
