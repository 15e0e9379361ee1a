package server

import (
	"time"

	"quotewiz/internal/quote"
	"quotewiz/internal/store"
)

// specDTO mirrors quote.QuoteSpec with the camelCase keys the web
// client expects.
type specDTO struct {
	Title       string   `json:"title"`
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline"`
	Features    []string `json:"features"`
	Modules     []string `json:"modules"`
	Description string   `json:"description"`
	ImagePrompt string   `json:"imagePrompt"`
	Layout      string   `json:"layout"`
	Theme       string   `json:"theme"`
	CTA         string   `json:"cta"`
}

func toSpecDTO(spec quote.QuoteSpec) specDTO {
	return specDTO{
		Title:       spec.Title,
		Headline:    spec.Headline,
		Subheadline: spec.Subheadline,
		Features:    spec.Features,
		Modules:     spec.Modules,
		Description: spec.Description,
		ImagePrompt: spec.ImagePrompt,
		Layout:      spec.Layout,
		Theme:       spec.Theme,
		CTA:         spec.CTA,
	}
}

type usageDTO struct {
	InputTokens   int     `json:"inputTokens"`
	EstimatedCost float64 `json:"estimatedCost"`
}

type quoteResponse struct {
	Spec     specDTO  `json:"spec"`
	ImageURL string   `json:"imageUrl"`
	Usage    usageDTO `json:"usage"`
}

// recentDTO is the trimmed listing shape for cached results.
type recentDTO struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Cost      float64   `json:"cost"`
}

func toRecentDTO(r store.Result) recentDTO {
	return recentDTO{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Title:     r.Spec.Title,
		Cost:      r.Cost,
	}
}
