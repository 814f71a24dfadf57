package store

import (
	"sort"
	"strings"

	"github.com/mcikids/portal/models"
)

// Totals is the headline finance aggregate.
type Totals struct {
	Entries float64 `json:"entries"`
	Exits   float64 `json:"exits"`
	Balance float64 `json:"balance"`
}

// FinanceTotals sums the offering-category ledger entries. Expense-category
// entries are deliberately excluded from this aggregate: only "oferta"
// counts toward the headline balance.
func FinanceTotals(offerings []models.Offering) Totals {
	var t Totals
	for _, o := range offerings {
		if o.Category != models.CategoryOffering {
			continue
		}
		switch o.Direction {
		case models.DirectionIn:
			t.Entries += o.Amount
		case models.DirectionOut:
			t.Exits += o.Amount
		}
	}
	t.Balance = t.Entries - t.Exits
	return t
}

// VisibleFeed sorts posts newest first and applies the visibility rules:
// an optional author (profile) filter, then — unless the user is a leader,
// who sees everything — only posts that are public, mention the user
// (case-insensitive exact match) or were authored by the user.
func VisibleFeed(feed []models.FeedItem, user *models.User, profileFilter string) []models.FeedItem {
	sorted := sortByCreatedDesc(feed)
	if profileFilter != "" {
		kept := []models.FeedItem{}
		for _, item := range sorted {
			if item.AuthorName == profileFilter {
				kept = append(kept, item)
			}
		}
		sorted = kept
	}
	if user.IsLeader() {
		return sorted
	}

	name := ""
	author := ""
	if user != nil {
		name = strings.ToLower(user.Name)
		author = user.Name
	}
	out := []models.FeedItem{}
	for _, item := range sorted {
		if item.Public || mentions(item, name) || (author != "" && item.AuthorName == author) {
			out = append(out, item)
		}
	}
	return out
}

// PublicFeed returns the public posts, newest first (the mural view).
func PublicFeed(feed []models.FeedItem) []models.FeedItem {
	out := []models.FeedItem{}
	for _, item := range feed {
		if item.Public {
			out = append(out, item)
		}
	}
	return sortByCreatedDesc(out)
}

func mentions(item models.FeedItem, lowerName string) bool {
	if lowerName == "" {
		return false
	}
	for _, m := range item.Mentions {
		if strings.ToLower(m) == lowerName {
			return true
		}
	}
	return false
}

// sortByCreatedDesc orders by the CreatedAt string. Timestamps are
// fixed-width ISO-8601, so lexicographic order is chronological order.
func sortByCreatedDesc(feed []models.FeedItem) []models.FeedItem {
	out := append([]models.FeedItem{}, feed...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
