package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/data/repos"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/grocery"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"github.com/yungbote/mealplanner-backend/internal/requestdata"
	"gorm.io/gorm"
)

type ShoppingListService interface {
	List(ctx context.Context) ([]*types.ShoppingList, error)
	// GenerateFromPlan aggregates the plan's recipe ingredients into a new
	// shopping list. A new list is created on every call.
	GenerateFromPlan(ctx context.Context, planID uuid.UUID) (*types.ShoppingList, error)
	ToggleItem(ctx context.Context, listID, itemID uuid.UUID, isChecked bool) (*types.ShoppingListItem, error)
}

type shoppingListService struct {
	db       *gorm.DB
	log      *logger.Logger
	listRepo repos.ShoppingListRepo
	itemRepo repos.ShoppingListItemRepo
	planRepo repos.MealPlanRepo
}

func NewShoppingListService(
	db *gorm.DB,
	baseLog *logger.Logger,
	listRepo repos.ShoppingListRepo,
	itemRepo repos.ShoppingListItemRepo,
	planRepo repos.MealPlanRepo,
) ShoppingListService {
	serviceLog := baseLog.With("service", "ShoppingListService")
	return &shoppingListService{
		db:       db,
		log:      serviceLog,
		listRepo: listRepo,
		itemRepo: itemRepo,
		planRepo: planRepo,
	}
}

func (ss *shoppingListService) List(ctx context.Context) ([]*types.ShoppingList, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}
	out, err := ss.listRepo.ListByUser(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("list shopping lists: %w", err))
	}
	return out, nil
}

func (ss *shoppingListService) GenerateFromPlan(ctx context.Context, planID uuid.UUID) (*types.ShoppingList, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}
	if planID == uuid.Nil {
		return nil, apierr.Validation(fmt.Errorf("meal_plan_id required"))
	}

	plan, err := ss.planRepo.GetByIDForUser(ctx, nil, planID, rd.UserID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("load meal plan: %w", err))
	}
	if plan == nil {
		return nil, apierr.NotFound(fmt.Errorf("meal plan not found"))
	}

	planItems := make([]grocery.PlanItem, 0, len(plan.Items))
	for _, item := range plan.Items {
		if item.Recipe == nil {
			continue
		}
		var ingredients []types.RecipeIngredient
		if len(item.Recipe.Ingredients) > 0 {
			if err := json.Unmarshal(item.Recipe.Ingredients, &ingredients); err != nil {
				return nil, apierr.Storage(fmt.Errorf("decode ingredients for recipe %s: %w", item.Recipe.ID, err))
			}
		}
		planItems = append(planItems, grocery.PlanItem{
			Servings:    item.Servings,
			Ingredients: ingredients,
		})
	}

	lines := grocery.Aggregate(planItems)

	list := &types.ShoppingList{
		ID:        uuid.New(),
		UserID:    rd.UserID,
		Name:      "Shopping List - " + plan.Name,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
	}
	for _, line := range lines {
		list.Items = append(list.Items, types.ShoppingListItem{
			ID:       uuid.New(),
			Name:     line.Name,
			Amount:   line.Amount,
			Unit:     line.Unit,
			Category: string(line.Category),
		})
	}

	// All entries land with the list or not at all.
	txErr := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ss.listRepo.CreateWithItems(ctx, tx, list); err != nil {
			return apierr.Storage(fmt.Errorf("create shopping list: %w", err))
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	complete, err := ss.listRepo.GetByIDForUser(ctx, nil, list.ID, rd.UserID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("reload shopping list: %w", err))
	}
	if complete == nil {
		return nil, apierr.Storage(fmt.Errorf("shopping list disappeared after create"))
	}
	return complete, nil
}

func (ss *shoppingListService) ToggleItem(ctx context.Context, listID, itemID uuid.UUID, isChecked bool) (*types.ShoppingListItem, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}

	list, err := ss.listRepo.GetByIDForUser(ctx, nil, listID, rd.UserID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("load shopping list: %w", err))
	}
	if list == nil {
		return nil, apierr.NotFound(fmt.Errorf("shopping list not found"))
	}

	item, err := ss.itemRepo.GetByIDForList(ctx, nil, itemID, list.ID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("load shopping list item: %w", err))
	}
	if item == nil {
		return nil, apierr.NotFound(fmt.Errorf("shopping list item not found"))
	}

	if err := ss.itemRepo.UpdateIsChecked(ctx, nil, item.ID, isChecked); err != nil {
		return nil, apierr.Storage(fmt.Errorf("update item: %w", err))
	}
	item.IsChecked = isChecked
	return item, nil
}
