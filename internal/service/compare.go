package service

import (
	"fmt"
	"math"

	"propertyfinder/internal/model"
)

// DefaultMaxCompare is the comparison set capacity
const DefaultMaxCompare = 3

// Highlight reasons attached to comparison members
const (
	ReasonBestValue    = "Best value"
	ReasonHighestRated = "Highest rated"
)

// CompareOutcome tells what a comparison toggle did
type CompareOutcome string

const (
	CompareAdded        CompareOutcome = "added"
	CompareRemoved      CompareOutcome = "removed"
	CompareRejectedFull CompareOutcome = "rejected_full"
)

// ComparisonSet is a bounded, insertion-ordered set of listing ids.
// Operations return a new value and never modify the receiver.
type ComparisonSet struct {
	ids   []int
	limit int
}

// NewComparisonSet creates an empty set holding at most limit ids
func NewComparisonSet(limit int) ComparisonSet {
	if limit <= 0 {
		limit = DefaultMaxCompare
	}
	return ComparisonSet{ids: []int{}, limit: limit}
}

// IDs returns the member ids in insertion order
func (s ComparisonSet) IDs() []int {
	return append(make([]int, 0, len(s.ids)), s.ids...)
}

// Len returns the number of members
func (s ComparisonSet) Len() int {
	return len(s.ids)
}

// Contains reports whether id is a member
func (s ComparisonSet) Contains(id int) bool {
	for _, m := range s.ids {
		if m == id {
			return true
		}
	}
	return false
}

// Toggle removes the listing if present, appends it if there is room,
// and otherwise leaves the set unchanged. The notice is user-facing.
func (s ComparisonSet) Toggle(l model.Listing) (ComparisonSet, CompareOutcome, string) {
	if s.Contains(l.ID) {
		next := ComparisonSet{ids: make([]int, 0, len(s.ids)), limit: s.limit}
		for _, m := range s.ids {
			if m != l.ID {
				next.ids = append(next.ids, m)
			}
		}
		return next, CompareRemoved, fmt.Sprintf("Removed %s from comparison.", l.Name)
	}

	if len(s.ids) < s.limit {
		next := ComparisonSet{ids: append(s.IDs(), l.ID), limit: s.limit}
		return next, CompareAdded, fmt.Sprintf("Added %s to comparison.", l.Name)
	}

	return s, CompareRejectedFull, fmt.Sprintf("Comparison list is full (max %d).", s.limit)
}

// RemoveByID toggles the member with the given id off. It is a no-op when
// id is not a member.
func (s ComparisonSet) RemoveByID(id int, catalog model.Catalog) (ComparisonSet, bool, string) {
	if !s.Contains(id) {
		return s, false, ""
	}
	l, ok := catalog.Find(id)
	if !ok {
		l = model.Listing{ID: id, Name: fmt.Sprintf("#%d", id)}
	}
	next, _, notice := s.Toggle(l)
	return next, true, notice
}

// Clear empties the set
func (s ComparisonSet) Clear() ComparisonSet {
	return NewComparisonSet(s.limit)
}

// Members resolves the member ids against the catalog, in set order.
// Ids missing from the catalog are skipped.
func (s ComparisonSet) Members(catalog model.Catalog) []model.Listing {
	members := make([]model.Listing, 0, len(s.ids))
	for _, id := range s.ids {
		if l, ok := catalog.Find(id); ok {
			members = append(members, l)
		}
	}
	return members
}

// ComparisonExtremes returns the lowest price and highest rating among
// members. An empty comparison yields (+Inf, 0), so nothing is highlighted.
func ComparisonExtremes(members []model.Listing) (lowestPrice, highestRating float64) {
	lowestPrice = math.Inf(1)
	for _, m := range members {
		lowestPrice = math.Min(lowestPrice, m.Price)
		highestRating = math.Max(highestRating, m.Rating)
	}
	return lowestPrice, highestRating
}

// Summarize annotates comparison members for side-by-side display
func Summarize(members []model.Listing) model.ComparisonSummary {
	lowest, highest := ComparisonExtremes(members)

	summary := model.ComparisonSummary{
		Members:       make([]model.ComparedListing, 0, len(members)),
		HighestRating: highest,
		AmenityMatrix: make([]model.AmenityRow, 0, len(model.AvailableAmenities)),
	}
	if len(members) > 0 {
		summary.LowestPrice = &lowest
	}

	for _, m := range members {
		highlights := []string{}
		if m.Price == lowest {
			highlights = append(highlights, ReasonBestValue)
		}
		if m.Rating == highest {
			highlights = append(highlights, ReasonHighestRated)
		}
		summary.Members = append(summary.Members, model.ComparedListing{Listing: m, Highlights: highlights})
	}

	for _, amenity := range model.AvailableAmenities {
		row := model.AmenityRow{Amenity: amenity, Present: make([]bool, len(members))}
		for i, m := range members {
			row.Present[i] = m.HasAmenity(amenity)
		}
		summary.AmenityMatrix = append(summary.AmenityMatrix, row)
	}

	return summary
}
