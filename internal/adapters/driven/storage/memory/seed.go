package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driven"
	"github.com/lodgeworks/stayform/internal/core/taxonomy"
)

// SeedDocuments loads demo documents into a store: one confirmed hotel
// profile, one pending room type and one fresh draft, so every lifecycle
// state is on screen the first time the tool runs.
func SeedDocuments(ctx context.Context, store driven.DocumentStore) error {
	now := time.Now()

	hotel := &domain.Document{
		ID:           uuid.NewString(),
		Title:        "Harbourview Grand Hotel",
		Category:     domain.CategoryHotelBase,
		Fields:       taxonomy.FieldsTemplate(domain.CategoryHotelBase),
		Status:       domain.StatusConfirmed,
		Source:       "demo data",
		LastModified: now.Add(-48 * time.Hour),
	}
	fillText(hotel, "hotelName", "Harbourview Grand Hotel")
	fillText(hotel, "address", "12 Marina Parade, Harbour District")
	fillText(hotel, "description", "A 280-room waterfront hotel a short walk from the ferry terminal, with a rooftop pool and three restaurants.")
	fillText(hotel, "country", "Portugal")
	fillText(hotel, "city", "Lisbon")
	fillText(hotel, "phone", "+351 21 555 0142")
	fillText(hotel, "starRating", "5")
	fillText(hotel, "roomCount", "280")
	hotel.Completeness = domain.Completeness(hotel.Fields)

	room := &domain.Document{
		ID:           uuid.NewString(),
		Title:        "Deluxe Sea View Double",
		Category:     domain.CategoryRoomType,
		Fields:       taxonomy.FieldsTemplate(domain.CategoryRoomType),
		Status:       domain.StatusPending,
		Source:       "demo data",
		LastModified: now.Add(-24 * time.Hour),
	}
	fillText(room, "roomTypeName", "Deluxe Sea View Double")
	fillText(room, "roomArea", "32 sqm")
	room.Completeness = domain.Completeness(room.Fields)

	policy := &domain.Document{
		ID:           uuid.NewString(),
		Title:        "House Policies",
		Category:     domain.CategoryPolicy,
		Fields:       taxonomy.FieldsTemplate(domain.CategoryPolicy),
		Status:       domain.StatusDraft,
		Source:       "demo data",
		LastModified: now.Add(-2 * time.Hour),
	}

	for _, doc := range []*domain.Document{hotel, room, policy} {
		if err := store.Save(ctx, doc); err != nil {
			return fmt.Errorf("seeding document %q: %w", doc.Title, err)
		}
	}
	return nil
}

// SeedGaps loads demo knowledge gaps into a store, covering each priority,
// recommendation level and lifecycle state.
func SeedGaps(ctx context.Context, store driven.GapStore) error {
	now := time.Now()

	gaps := []*domain.KnowledgeGap{
		{
			ID:                   uuid.NewString(),
			Question:             "Is there a shuttle from the airport, and does it need booking in advance?",
			QuestionTheme:        "Airport transfer",
			AIResponse:           "I don't have information about an airport shuttle for this hotel.",
			FrequencyDescription: "Asked 14 times in the last 30 days",
			Status:               domain.GapPending,
			Priority:             domain.PriorityHigh,
			LastAskedAt:          now.Add(-3 * time.Hour),
			SuggestedCategory:    domain.CategoryFacility,
			SuggestedSection:     "Transport Services",
			Recommendation:       domain.RecommendationAI,
			Transcript: []domain.TranscriptTurn{
				{Role: "user", Content: "Do you run an airport shuttle?"},
				{Role: "assistant", Content: "I'm sorry, I don't have shuttle details for this property."},
			},
		},
		{
			ID:                   uuid.NewString(),
			Question:             "Can we bring our cat? The pet policy only mentions dogs.",
			QuestionTheme:        "Pets",
			FrequencyDescription: "Asked 5 times in the last 30 days",
			Status:               domain.GapPending,
			Priority:             domain.PriorityMedium,
			LastAskedAt:          now.Add(-26 * time.Hour),
			SuggestedCategory:    domain.CategoryPolicy,
			SuggestedSection:     "Pets",
			Recommendation:       domain.RecommendationNeedConfirm,
		},
		{
			ID:                   uuid.NewString(),
			Question:             "What time does the rooftop bar close on weekends?",
			QuestionTheme:        "Bar hours",
			FrequencyDescription: "Asked twice in the last 30 days",
			Status:               domain.GapResolved,
			Priority:             domain.PriorityLow,
			LastAskedAt:          now.Add(-6 * 24 * time.Hour),
			SuggestedCategory:    domain.CategoryFacility,
			SuggestedSection:     "Dining",
			SuggestedSubsection:  "Bar",
			Recommendation:       domain.RecommendationAI,
			ResolvedAt:           now.Add(-5 * 24 * time.Hour),
			ResolvedBy:           "manual",
			Resolution:           "Rooftop bar closes at 01:00 on Friday and Saturday, midnight otherwise.",
		},
		{
			ID:                   uuid.NewString(),
			Question:             "Do you price-match other booking sites?",
			QuestionTheme:        "Pricing",
			FrequencyDescription: "Asked once",
			Status:               domain.GapIgnored,
			Priority:             domain.PriorityLow,
			LastAskedAt:          now.Add(-12 * 24 * time.Hour),
			Recommendation:       domain.RecommendationNeedManual,
		},
	}

	for _, gap := range gaps {
		if err := store.Save(ctx, gap); err != nil {
			return fmt.Errorf("seeding gap %q: %w", gap.QuestionTheme, err)
		}
	}
	return nil
}

func fillText(doc *domain.Document, key, value string) {
	if f := doc.FieldByKey(key); f != nil {
		f.Text = value
	}
}
