package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(v float64) *float64 {
	return &v
}

// newTxManager wires a transaction manager that runs the closure directly
// against the given factory, standing in for a real database transaction.
func newTxManager(t *testing.T) (*mockRepo.MockTransactionManager, *mockRepo.MockRepositoryFactory) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager, factory
}

func validCreateInput() *usecase.CreateListingInput {
	return &usecase.CreateListingInput{
		Name:        "Amazing Spider-Man #300",
		Price:       decimal.NewFromInt(120),
		Description: "First appearance of Venom.",
		Condition:   entity.ConditionGood.String(),
		Category:    entity.CategoryComics.String(),
		Postage:     entity.PostageByWeight.String(),
	}
}

func availableListing(sellerID uuid.UUID) *entity.Listing {
	return &entity.Listing{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        "Amazing Spider-Man #300",
		Price:       decimal.NewFromInt(120),
		Description: "First appearance of Venom.",
		Condition:   entity.ConditionGood,
		Status:      entity.StatusAvailable,
		Category:    entity.CategoryComics,
		Postage:     entity.PostageByWeight,
		Version:     1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
