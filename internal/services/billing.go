package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/price"
	"github.com/stripe/stripe-go/v81/product"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
)

const (
	proProductName = "MealPlanner Pro"
	proProductDesc = "Full access to AI meal planning features including unlimited " +
		"recipe generation, personalized meal plans, smart shopping lists, and " +
		"nutritional tracking."
	proUnitAmount = 799

	priceCacheKey = "billing:price_id"
)

type BillingPrice struct {
	PriceID   string `json:"price_id"`
	ProductID string `json:"product_id,omitempty"`
}

type BillingService interface {
	// GetPriceID returns the monthly subscription price id, creating the
	// product and price at Stripe when they do not exist yet.
	GetPriceID(ctx context.Context) (*BillingPrice, error)
}

type billingService struct {
	log      *logger.Logger
	rdb      *goredis.Client
	cacheTTL time.Duration

	mu            sync.Mutex
	cachedPriceID string
	cachedUntil   time.Time
}

// NewBillingService caches the ensured price id in Redis when rdb is non-nil,
// falling back to a process-local cache otherwise.
func NewBillingService(baseLog *logger.Logger, rdb *goredis.Client, cacheTTL time.Duration) BillingService {
	serviceLog := baseLog.With("service", "BillingService")
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &billingService{
		log:      serviceLog,
		rdb:      rdb,
		cacheTTL: cacheTTL,
	}
}

func (bs *billingService) GetPriceID(ctx context.Context) (*BillingPrice, error) {
	if id := bs.cachedID(ctx); id != "" {
		return &BillingPrice{PriceID: id}, nil
	}

	result, err := bs.ensurePrice(ctx)
	if err != nil {
		return nil, apierr.Upstream(fmt.Errorf("ensure stripe price: %w", err))
	}

	bs.storeID(ctx, result.PriceID)
	return result, nil
}

func (bs *billingService) cachedID(ctx context.Context) string {
	if bs.rdb != nil {
		id, err := bs.rdb.Get(ctx, priceCacheKey).Result()
		if err == nil && strings.TrimSpace(id) != "" {
			return id
		}
		if err != nil && err != goredis.Nil {
			bs.log.Warn("Redis price cache read failed", "error", err)
		}
	}

	bs.mu.Lock()
	defer bs.mu.Unlock()
	if bs.cachedPriceID != "" && time.Now().Before(bs.cachedUntil) {
		return bs.cachedPriceID
	}
	return ""
}

func (bs *billingService) storeID(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if bs.rdb != nil {
		if err := bs.rdb.Set(ctx, priceCacheKey, id, bs.cacheTTL).Err(); err != nil {
			bs.log.Warn("Redis price cache write failed", "error", err)
		}
	}
	bs.mu.Lock()
	bs.cachedPriceID = id
	bs.cachedUntil = time.Now().Add(bs.cacheTTL)
	bs.mu.Unlock()
}

func (bs *billingService) ensurePrice(ctx context.Context) (*BillingPrice, error) {
	prod, err := bs.findProduct(ctx)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		params := &stripe.ProductParams{
			Name:        stripe.String(proProductName),
			Description: stripe.String(proProductDesc),
		}
		params.Context = ctx
		params.AddMetadata("app", "mealplannerai")
		prod, err = product.New(params)
		if err != nil {
			return nil, fmt.Errorf("create product: %w", err)
		}
	}

	pr, err := bs.findMonthlyPrice(ctx, prod.ID)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		params := &stripe.PriceParams{
			Product:    stripe.String(prod.ID),
			UnitAmount: stripe.Int64(proUnitAmount),
			Currency:   stripe.String(string(stripe.CurrencyUSD)),
			Recurring: &stripe.PriceRecurringParams{
				Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
			},
		}
		params.Context = ctx
		params.AddMetadata("app", "mealplannerai")
		pr, err = price.New(params)
		if err != nil {
			return nil, fmt.Errorf("create price: %w", err)
		}
	}

	return &BillingPrice{PriceID: pr.ID, ProductID: prod.ID}, nil
}

func (bs *billingService) findProduct(ctx context.Context) (*stripe.Product, error) {
	params := &stripe.ProductListParams{Active: stripe.Bool(true)}
	params.Context = ctx
	params.Limit = stripe.Int64(10)

	iter := product.List(params)
	for iter.Next() {
		p := iter.Product()
		if p.Name == proProductName {
			return p, nil
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return nil, nil
}

func (bs *billingService) findMonthlyPrice(ctx context.Context, productID string) (*stripe.Price, error) {
	params := &stripe.PriceListParams{
		Product: stripe.String(productID),
		Active:  stripe.Bool(true),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(10)

	iter := price.List(params)
	for iter.Next() {
		p := iter.Price()
		if p.UnitAmount == proUnitAmount && p.Recurring != nil && p.Recurring.Interval == stripe.PriceRecurringIntervalMonth {
			return p, nil
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	return nil, nil
}
