package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/clients/openai"
	"github.com/yungbote/mealplanner-backend/internal/data/repos"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"github.com/yungbote/mealplanner-backend/internal/requestdata"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GenerateRecipeInput struct {
	MealType               string `json:"meal_type"`
	AdditionalInstructions string `json:"additional_instructions"`
}

type RecipeService interface {
	List(ctx context.Context) ([]*types.Recipe, error)
	Create(ctx context.Context, recipe *types.Recipe) (*types.Recipe, error)
	Generate(ctx context.Context, input GenerateRecipeInput) (*types.Recipe, error)
}

type recipeService struct {
	db         *gorm.DB
	log        *logger.Logger
	recipeRepo repos.RecipeRepo
	userRepo   repos.UserRepo
	prefsRepo  repos.DietaryPreferencesRepo
	ai         openai.Client
}

func NewRecipeService(
	db *gorm.DB,
	baseLog *logger.Logger,
	recipeRepo repos.RecipeRepo,
	userRepo repos.UserRepo,
	prefsRepo repos.DietaryPreferencesRepo,
	ai openai.Client,
) RecipeService {
	serviceLog := baseLog.With("service", "RecipeService")
	return &recipeService{
		db:         db,
		log:        serviceLog,
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
		prefsRepo:  prefsRepo,
		ai:         ai,
	}
}

// requireSubscribedUser loads the authenticated user and checks entitlement.
func requireSubscribedUser(ctx context.Context, userRepo repos.UserRepo) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}
	users, err := userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("load user: %w", err))
	}
	if len(users) == 0 {
		return nil, apierr.NotFound(fmt.Errorf("user not found"))
	}
	user := users[0]
	if !user.HasActiveSubscription(time.Now()) {
		return nil, apierr.SubscriptionRequired(fmt.Errorf("active subscription required"))
	}
	return user, nil
}

func (rs *recipeService) List(ctx context.Context) ([]*types.Recipe, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}
	out, err := rs.recipeRepo.ListByUser(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("list recipes: %w", err))
	}
	return out, nil
}

func (rs *recipeService) Create(ctx context.Context, recipe *types.Recipe) (*types.Recipe, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}
	if recipe == nil || strings.TrimSpace(recipe.Name) == "" {
		return nil, apierr.Validation(fmt.Errorf("recipe name required"))
	}
	if len(recipe.Ingredients) == 0 {
		recipe.Ingredients = datatypes.JSON([]byte("[]"))
	}
	if len(recipe.Instructions) == 0 {
		recipe.Instructions = datatypes.JSON([]byte("[]"))
	}
	recipe.ID = uuid.New()
	recipe.UserID = rd.UserID
	recipe.IsAIGenerated = false
	if recipe.Servings <= 0 {
		recipe.Servings = 2
	}

	created, err := rs.recipeRepo.Create(ctx, nil, []*types.Recipe{recipe})
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("create recipe: %w", err))
	}
	return created[0], nil
}

// generatedRecipe mirrors the json_schema the model is constrained to.
type generatedRecipe struct {
	Name         string                    `json:"name"`
	Description  string                    `json:"description"`
	PrepTime     int                       `json:"prep_time"`
	CookTime     int                       `json:"cook_time"`
	TotalTime    int                       `json:"total_time"`
	Servings     int                       `json:"servings"`
	Ingredients  []types.RecipeIngredient  `json:"ingredients"`
	Instructions []types.RecipeInstruction `json:"instructions"`
	Calories     int                       `json:"calories"`
	Protein      int                       `json:"protein"`
	Carbs        int                       `json:"carbs"`
	Fat          int                       `json:"fat"`
	Fiber        int                       `json:"fiber"`
	Sugar        int                       `json:"sugar"`
	Sodium       int                       `json:"sodium"`
	Cuisine      string                    `json:"cuisine"`
	MealType     []string                  `json:"meal_type"`
	DietTags     []string                  `json:"diet_tags"`
}

func (g *generatedRecipe) toRecipe(userID uuid.UUID) (*types.Recipe, error) {
	ingredients, err := json.Marshal(g.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("marshal ingredients: %w", err)
	}
	instructions, err := json.Marshal(g.Instructions)
	if err != nil {
		return nil, fmt.Errorf("marshal instructions: %w", err)
	}
	mealType, err := json.Marshal(g.MealType)
	if err != nil {
		return nil, fmt.Errorf("marshal meal_type: %w", err)
	}
	dietTags, err := json.Marshal(g.DietTags)
	if err != nil {
		return nil, fmt.Errorf("marshal diet_tags: %w", err)
	}
	return &types.Recipe{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          g.Name,
		Description:   g.Description,
		PrepTime:      g.PrepTime,
		CookTime:      g.CookTime,
		TotalTime:     g.TotalTime,
		Servings:      g.Servings,
		Ingredients:   datatypes.JSON(ingredients),
		Instructions:  datatypes.JSON(instructions),
		Calories:      g.Calories,
		Protein:       g.Protein,
		Carbs:         g.Carbs,
		Fat:           g.Fat,
		Fiber:         g.Fiber,
		Sugar:         g.Sugar,
		Sodium:        g.Sodium,
		Cuisine:       g.Cuisine,
		MealType:      datatypes.JSON(mealType),
		DietTags:      datatypes.JSON(dietTags),
		IsAIGenerated: true,
	}, nil
}

const recipeSystemPrompt = "You are a professional chef and nutritionist. " +
	"Generate delicious, healthy recipes that match the given requirements."

func (rs *recipeService) Generate(ctx context.Context, input GenerateRecipeInput) (*types.Recipe, error) {
	user, err := requireSubscribedUser(ctx, rs.userRepo)
	if err != nil {
		return nil, err
	}

	mealType := strings.TrimSpace(input.MealType)
	if mealType == "" {
		mealType = "dinner"
	}

	prefs, err := rs.prefsRepo.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("load preferences: %w", err))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s recipe with the following requirements:\n\n", mealType)
	b.WriteString(preferenceLines(prefs))
	if prefs != nil && prefs.MaxPrepTime != nil && *prefs.MaxPrepTime > 0 {
		fmt.Fprintf(&b, "Maximum prep time: %d minutes\n", *prefs.MaxPrepTime)
	} else {
		b.WriteString("Maximum prep time: no limit\n")
	}
	fmt.Fprintf(&b, "Servings: %d\n", servingsOrDefault(prefs))
	if extra := strings.TrimSpace(input.AdditionalInstructions); extra != "" {
		fmt.Fprintf(&b, "Additional instructions: %s\n", extra)
	}

	obj, err := rs.ai.GenerateJSON(ctx, recipeSystemPrompt, b.String(), "recipe", recipeSchema())
	if err != nil {
		return nil, apierr.Upstream(fmt.Errorf("generate recipe: %w", err))
	}

	var gen generatedRecipe
	if err := decodeInto(obj, &gen); err != nil {
		return nil, apierr.Upstream(fmt.Errorf("decode generated recipe: %w", err))
	}
	if strings.TrimSpace(gen.Name) == "" {
		return nil, apierr.Upstream(fmt.Errorf("generated recipe missing name"))
	}

	recipe, err := gen.toRecipe(user.ID)
	if err != nil {
		return nil, apierr.Storage(err)
	}
	created, err := rs.recipeRepo.Create(ctx, nil, []*types.Recipe{recipe})
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("save generated recipe: %w", err))
	}
	return created[0], nil
}
