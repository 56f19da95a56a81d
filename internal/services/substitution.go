package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/mealplanner-backend/internal/clients/openai"
	"github.com/yungbote/mealplanner-backend/internal/data/repos"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
)

type SubstitutionInput struct {
	Ingredient string `json:"ingredient"`
	Reason     string `json:"reason"`
}

type Substitution struct {
	Name        string   `json:"name"`
	Ratio       string   `json:"ratio"`
	Notes       string   `json:"notes"`
	DietaryTags []string `json:"dietary_tags"`
}

type SubstitutionResult struct {
	OriginalIngredient string         `json:"original_ingredient"`
	Substitutions      []Substitution `json:"substitutions"`
}

type SubstitutionService interface {
	Suggest(ctx context.Context, input SubstitutionInput) (*SubstitutionResult, error)
}

type substitutionService struct {
	log       *logger.Logger
	userRepo  repos.UserRepo
	prefsRepo repos.DietaryPreferencesRepo
	ai        openai.Client
}

func NewSubstitutionService(
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	prefsRepo repos.DietaryPreferencesRepo,
	ai openai.Client,
) SubstitutionService {
	serviceLog := baseLog.With("service", "SubstitutionService")
	return &substitutionService{
		log:       serviceLog,
		userRepo:  userRepo,
		prefsRepo: prefsRepo,
		ai:        ai,
	}
}

const substitutionSystemPrompt = "You are a culinary expert. Suggest practical " +
	"ingredient substitutions that maintain flavor and texture as much as possible."

func (ss *substitutionService) Suggest(ctx context.Context, input SubstitutionInput) (*SubstitutionResult, error) {
	user, err := requireSubscribedUser(ctx, ss.userRepo)
	if err != nil {
		return nil, err
	}

	ingredient := strings.TrimSpace(input.Ingredient)
	if ingredient == "" {
		return nil, apierr.Validation(fmt.Errorf("ingredient required"))
	}

	prefs, err := ss.prefsRepo.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("load preferences: %w", err))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suggest substitutions for %q", ingredient)
	if reason := strings.TrimSpace(input.Reason); reason != "" {
		fmt.Fprintf(&b, " (reason: %s)", reason)
	}
	b.WriteString(".\n")
	if restrictions := dietaryRestrictions(prefs); len(restrictions) > 0 {
		fmt.Fprintf(&b, "Must be compatible with: %s\n", strings.Join(restrictions, ", "))
	}

	obj, err := ss.ai.GenerateJSON(ctx, substitutionSystemPrompt, b.String(), "ingredient_substitution", substitutionSchema())
	if err != nil {
		return nil, apierr.Upstream(fmt.Errorf("suggest substitutions: %w", err))
	}

	var result SubstitutionResult
	if err := decodeInto(obj, &result); err != nil {
		return nil, apierr.Upstream(fmt.Errorf("decode substitutions: %w", err))
	}
	if result.OriginalIngredient == "" {
		result.OriginalIngredient = ingredient
	}
	return &result, nil
}
