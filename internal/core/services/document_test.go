package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/stayform/internal/adapters/driven/storage/memory"
	"github.com/lodgeworks/stayform/internal/core/domain"
)

// hotelRequiredKeys are the required fields of the hotel profile template.
var hotelRequiredKeys = []string{
	"hotelName", "address", "description", "country", "city",
	"phone", "starRating", "roomCount",
}

func newDocumentService() (*DocumentService, *memory.DocumentStore) {
	store := memory.NewDocumentStore()
	svc := NewDocumentService(store)
	return svc, store
}

func fillRequired(doc *domain.Document) {
	for _, f := range domain.MissingFields(doc.Fields) {
		target := doc.FieldByKey(f.Key)
		switch {
		case target.Type == domain.FieldTypePOIList:
			target.Entries = []domain.POIEntry{{ID: "e1", Name: "Central Station", Distance: "500 m"}}
		case target.Type.IsTextBacked():
			target.Text = "filled"
		}
	}
}

func TestDocumentService_Create(t *testing.T) {
	svc, _ := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, domain.CategoryHotelBase, "  Seaside Inn  ")
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Seaside Inn", doc.Title)
	assert.Equal(t, domain.StatusDraft, doc.Status)
	assert.Equal(t, 0, doc.Completeness)
	assert.Equal(t, DefaultSource, doc.Source)
	assert.NotEmpty(t, doc.Fields)

	for _, key := range hotelRequiredKeys {
		f := doc.FieldByKey(key)
		require.NotNil(t, f, "template should carry %s", key)
		assert.True(t, f.Required)
		assert.Empty(t, f.Text)
	}

	// The document is persisted immediately.
	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Title, got.Title)
}

func TestDocumentService_CreateValidation(t *testing.T) {
	svc, _ := newDocumentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Category("restaurant"), "Title")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, domain.CategoryPolicy, "   ")
	assert.ErrorIs(t, err, domain.ErrBlankName)
}

func TestDocumentService_SaveBlockedOnMissingRequired(t *testing.T) {
	svc, store := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, domain.CategoryHotelBase, "Seaside Inn")
	require.NoError(t, err)

	doc.FieldByKey("hotelName").Text = "Seaside Inn"

	_, err = svc.Save(ctx, doc, false)
	var missing *domain.MissingRequiredError
	require.ErrorAs(t, err, &missing)
	assert.Len(t, missing.Fields, len(hotelRequiredKeys)-1)

	// Nothing was written: the stored document still has no value.
	stored, err := store.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.FieldByKey("hotelName").Text)
	assert.Equal(t, domain.StatusDraft, stored.Status)
}

func TestDocumentService_SaveForce(t *testing.T) {
	svc, _ := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, domain.CategoryHotelBase, "Seaside Inn")
	require.NoError(t, err)
	doc.FieldByKey("hotelName").Text = "Seaside Inn"
	doc.FieldByKey("address").Text = "1 Beach Road"

	saved, err := svc.Save(ctx, doc, true)
	require.NoError(t, err)

	// Draft becomes pending on its first save with gaps remaining.
	assert.Equal(t, domain.StatusPending, saved.Status)
	assert.Equal(t, 25, saved.Completeness) // 2 of 8 required

	// A later forced save of a pending document keeps it pending.
	saved.FieldByKey("country").Text = "Portugal"
	again, err := svc.Save(ctx, saved, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again.Status)
}

func TestDocumentService_SaveCompleteConfirms(t *testing.T) {
	svc, _ := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, domain.CategoryHotelBase, "Seaside Inn")
	require.NoError(t, err)
	fillRequired(doc)

	saved, err := svc.Save(ctx, doc, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, saved.Status)
	assert.Equal(t, 100, saved.Completeness)
}

func TestDocumentService_SaveUpdatesTimestamp(t *testing.T) {
	svc, _ := newDocumentService()
	ctx := context.Background()

	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	doc, err := svc.Create(ctx, domain.CategoryPOI, "Neighbourhood")
	require.NoError(t, err)
	fillRequired(doc)

	saved, err := svc.Save(ctx, doc, false)
	require.NoError(t, err)
	assert.True(t, saved.LastModified.Equal(fixed))
}

func TestDocumentService_QuickConfirm(t *testing.T) {
	svc, _ := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, domain.CategoryHotelBase, "Seaside Inn")
	require.NoError(t, err)

	// Required fields missing: quick confirm is rejected.
	_, err = svc.QuickConfirm(ctx, doc.ID)
	var missing *domain.MissingRequiredError
	assert.ErrorAs(t, err, &missing)

	fillRequired(doc)
	_, err = svc.Save(ctx, doc, false)
	require.NoError(t, err)

	confirmed, err := svc.QuickConfirm(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
}

func TestDocumentService_Rename(t *testing.T) {
	svc, store := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, domain.CategoryCustom, "Before")
	require.NoError(t, err)

	require.NoError(t, svc.Rename(ctx, doc.ID, "After"))

	got, err := store.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, domain.StatusDraft, got.Status)
	// Renaming does not reorder the list.
	assert.True(t, got.LastModified.Equal(doc.LastModified))

	assert.ErrorIs(t, svc.Rename(ctx, doc.ID, "  "), domain.ErrBlankName)
	assert.ErrorIs(t, svc.Rename(ctx, "missing", "Title"), domain.ErrNotFound)
}

func TestDocumentService_Delete(t *testing.T) {
	svc, _ := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, domain.CategoryFacility, "Facilities")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, doc.ID))
	_, err = svc.Get(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_ListByCategory(t *testing.T) {
	svc, _ := newDocumentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CategoryRoomType, "Suite")
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CategoryPolicy, "Policies")
	require.NoError(t, err)

	rooms, err := svc.ListByCategory(ctx, domain.CategoryRoomType)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	_, err = svc.ListByCategory(ctx, domain.Category("bogus"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
