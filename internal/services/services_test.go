package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/testutil"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/requestdata"
	"gorm.io/gorm"
)

// stubAI is a canned openai.Client for service tests. It records the last
// prompt so tests can assert on what was sent.
type stubAI struct {
	jsonResponse map[string]any
	jsonErr      error

	lastSystem     string
	lastUser       string
	lastSchemaName string
}

func (s *stubAI) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	s.lastSystem = system
	s.lastUser = user
	s.lastSchemaName = schemaName
	if s.jsonErr != nil {
		return nil, s.jsonErr
	}
	return s.jsonResponse, nil
}

func (s *stubAI) GenerateText(ctx context.Context, system, user string) (string, error) {
	s.lastSystem = system
	s.lastUser = user
	return "", nil
}

func authedCtx(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}

func seedSubscribedUser(t *testing.T, ctx context.Context, tx *gorm.DB, email string) *types.User {
	t.Helper()
	u := testutil.SeedUser(t, ctx, tx, email)
	end := time.Now().Add(30 * 24 * time.Hour)
	if err := tx.WithContext(ctx).Model(&types.User{}).Where("id = ?", u.ID).Update("stripe_current_period_end", end).Error; err != nil {
		t.Fatalf("mark user subscribed: %v", err)
	}
	u.StripeCurrentPeriodEnd = &end
	return u
}
