package service

import (
	"context"
	"testing"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/KakonDebnath/bistro-boss-server/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_List_EmptyEmail(t *testing.T) {
	mockRepo := new(MockCartRepository)

	items, err := NewCartService(mockRepo).List(context.Background(), "a@x.com", "")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestCartService_List_OwnerMismatch(t *testing.T) {
	mockRepo := new(MockCartRepository)

	_, err := NewCartService(mockRepo).List(context.Background(), "a@x.com", "b@x.com")

	assert.ErrorIs(t, err, ErrCartOwnerMismatch)
	mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestCartService_List_Own(t *testing.T) {
	mockRepo := new(MockCartRepository)
	expected := []*domain.CartItem{{ID: "c1", Email: "a@x.com"}}
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(expected, nil)

	items, err := NewCartService(mockRepo).List(context.Background(), "a@x.com", "a@x.com")

	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestCartService_AddAndRemove(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartRepository())
	ctx := context.Background()

	res, err := svc.Add(ctx, &domain.CartItem{Name: "Salad", Email: "a@x.com"})
	require.NoError(t, err)

	items, err := svc.List(ctx, "a@x.com", "a@x.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	del, err := svc.Remove(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
}

func TestCatalogService(t *testing.T) {
	svc := NewCatalogService(
		repository.NewMemoryMenuRepository(&domain.MenuItem{Name: "Soup"}),
		repository.NewMemoryReviewRepository(&domain.Review{Name: "Ann", Rating: 5}),
	)

	menu, err := svc.Menu(context.Background())
	require.NoError(t, err)
	assert.Len(t, menu, 1)

	reviews, err := svc.Reviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(5), reviews[0].Rating)
}
