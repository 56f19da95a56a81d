package shopping

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/testutil"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
)

func TestShoppingListRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewShoppingListRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "shoppinglist@example.com")

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	created, err := repo.CreateWithItems(ctx, tx, &types.ShoppingList{
		ID:        uuid.New(),
		UserID:    u.ID,
		Name:      "Shopping List - Week of March 2",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
		Items: []types.ShoppingListItem{
			{ID: uuid.New(), Name: "Chicken breast", Amount: 2, Unit: "lb", Category: "Meat & Seafood"},
			{ID: uuid.New(), Name: "Spinach", Amount: 1, Unit: "bag", Category: "Produce"},
			{ID: uuid.New(), Name: "Milk", Amount: 1, Unit: "gallon", Category: "Dairy"},
		},
	})
	if err != nil {
		t.Fatalf("CreateWithItems: %v", err)
	}
	if len(created.Items) != 3 {
		t.Fatalf("CreateWithItems: expected 3 items, got %d", len(created.Items))
	}

	got, err := repo.GetByIDForUser(ctx, tx, created.ID, u.ID)
	if err != nil {
		t.Fatalf("GetByIDForUser: %v", err)
	}
	if got == nil || len(got.Items) != 3 {
		t.Fatalf("GetByIDForUser: unexpected result: %+v", got)
	}
	for i := 1; i < len(got.Items); i++ {
		if got.Items[i-1].Category > got.Items[i].Category {
			t.Fatalf("GetByIDForUser: items not ordered by category: %q before %q",
				got.Items[i-1].Category, got.Items[i].Category)
		}
	}

	other := testutil.SeedUser(t, ctx, tx, "shoppinglist-other@example.com")
	scoped, err := repo.GetByIDForUser(ctx, tx, created.ID, other.ID)
	if err != nil {
		t.Fatalf("GetByIDForUser (other user): %v", err)
	}
	if scoped != nil {
		t.Fatalf("GetByIDForUser (other user): expected nil, got %+v", scoped)
	}

	listed, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(listed) != 1 || len(listed[0].Items) != 3 {
		t.Fatalf("ListByUser: unexpected result: %+v", listed)
	}
}

func TestShoppingListItemRepoToggle(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	listRepo := NewShoppingListRepo(db, testutil.Logger(t))
	itemRepo := NewShoppingListItemRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "toggleitem@example.com")

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	created, err := listRepo.CreateWithItems(ctx, tx, &types.ShoppingList{
		ID:        uuid.New(),
		UserID:    u.ID,
		Name:      "Shopping List - Week of March 2",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
		Items: []types.ShoppingListItem{
			{ID: uuid.New(), Name: "Eggs", Amount: 12, Unit: "count", Category: "Dairy"},
		},
	})
	if err != nil {
		t.Fatalf("CreateWithItems: %v", err)
	}
	itemID := created.Items[0].ID

	item, err := itemRepo.GetByIDForList(ctx, tx, itemID, created.ID)
	if err != nil {
		t.Fatalf("GetByIDForList: %v", err)
	}
	if item == nil || item.IsChecked {
		t.Fatalf("GetByIDForList: unexpected item: %+v", item)
	}

	if err := itemRepo.UpdateIsChecked(ctx, tx, itemID, true); err != nil {
		t.Fatalf("UpdateIsChecked: %v", err)
	}

	item, err = itemRepo.GetByIDForList(ctx, tx, itemID, created.ID)
	if err != nil {
		t.Fatalf("GetByIDForList (after toggle): %v", err)
	}
	if item == nil || !item.IsChecked {
		t.Fatalf("GetByIDForList (after toggle): expected checked item, got %+v", item)
	}

	wrongList, err := itemRepo.GetByIDForList(ctx, tx, itemID, uuid.New())
	if err != nil {
		t.Fatalf("GetByIDForList (wrong list): %v", err)
	}
	if wrongList != nil {
		t.Fatalf("GetByIDForList (wrong list): expected nil, got %+v", wrongList)
	}
}
