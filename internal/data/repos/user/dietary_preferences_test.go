package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/testutil"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"gorm.io/datatypes"
)

func TestDietaryPreferencesRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewDietaryPreferencesRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "prefs@example.com")

	got, err := repo.GetByUserID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID (empty): %v", err)
	}
	if got != nil {
		t.Fatalf("GetByUserID (empty): expected nil, got %+v", got)
	}

	created, err := repo.Upsert(ctx, tx, &types.DietaryPreferences{
		UserID:          u.ID,
		IsVegetarian:    true,
		Allergies:       datatypes.JSON([]byte(`["peanuts"]`)),
		ServingsPerMeal: 2,
	})
	if err != nil {
		t.Fatalf("Upsert (insert): %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("Upsert (insert): expected generated id")
	}

	updated, err := repo.Upsert(ctx, tx, &types.DietaryPreferences{
		UserID:          u.ID,
		IsVegetarian:    false,
		IsKeto:          true,
		Allergies:       datatypes.JSON([]byte(`["peanuts","shellfish"]`)),
		ServingsPerMeal: 4,
	})
	if err != nil {
		t.Fatalf("Upsert (update): %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("Upsert (update): expected same row, got %s vs %s", updated.ID, created.ID)
	}

	got, err = repo.GetByUserID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got == nil || got.IsVegetarian || !got.IsKeto || got.ServingsPerMeal != 4 {
		t.Fatalf("GetByUserID: update not persisted: %+v", got)
	}
}
