package services_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/apperrors"
	"skillswap/internal/models"
	"skillswap/internal/repositories"
	"skillswap/internal/services"
)

// swapFixture wires a SwapService over in-memory stores with two seeded users.
type swapFixture struct {
	swaps         *services.SwapService
	notifications *services.NotificationService
	users         repositories.UserRepository
	ann           *models.User
	ben           *models.User
}

func newSwapFixture(t *testing.T) *swapFixture {
	t.Helper()

	userRepo := repositories.NewMemoryUserRepository()
	swapRepo := repositories.NewMemorySwapRequestRepository()
	notificationRepo := repositories.NewMemoryNotificationRepository()

	ann := &models.User{Name: "Ann", Email: "ann@x.com", IsPublic: true}
	ben := &models.User{Name: "Ben", Email: "ben@x.com", IsPublic: true}
	require.NoError(t, userRepo.Create(ann))
	require.NoError(t, userRepo.Create(ben))

	notifications := services.NewNotificationService(notificationRepo, nil)
	return &swapFixture{
		swaps:         services.NewSwapService(swapRepo, userRepo, notifications),
		notifications: notifications,
		users:         userRepo,
		ann:           ann,
		ben:           ben,
	}
}

func TestSwapService_CreateRequest(t *testing.T) {
	f := newSwapFixture(t)

	req, err := f.swaps.CreateRequest(f.ann.ID, f.ben.ID, "Trade React for design?")
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusPending, req.Status)
	assert.Equal(t, f.ann.ID, req.FromUserID)
	assert.Equal(t, f.ben.ID, req.ToUserID)
	assert.NotEmpty(t, req.ID)

	// The recipient's feed gains one swap_request entry naming the sender.
	feed, err := f.notifications.ListForUser(f.ben.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, models.NotificationSwapRequest, feed[0].Type)
	assert.Contains(t, feed[0].Message, "Ann")
	assert.False(t, feed[0].IsRead)
}

func TestSwapService_CreateRequest_TargetNotFound(t *testing.T) {
	f := newSwapFixture(t)

	_, err := f.swaps.CreateRequest(f.ann.ID, "no-such-user", "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSwapService_CreateRequest_SelfRequest(t *testing.T) {
	f := newSwapFixture(t)

	_, err := f.swaps.CreateRequest(f.ann.ID, f.ann.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSwapService_CreateRequest_DuplicatePending(t *testing.T) {
	f := newSwapFixture(t)

	first, err := f.swaps.CreateRequest(f.ann.ID, f.ben.ID, "")
	require.NoError(t, err)

	// A second request while the first is pending is rejected.
	_, err = f.swaps.CreateRequest(f.ann.ID, f.ben.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// The reverse direction is a distinct ordered pair and is allowed.
	_, err = f.swaps.CreateRequest(f.ben.ID, f.ann.ID, "")
	assert.NoError(t, err)

	// Once the first request is resolved, a new one may be created.
	_, err = f.swaps.UpdateStatus(first.ID, f.ben.ID, models.SwapStatusAccepted)
	require.NoError(t, err)
	_, err = f.swaps.CreateRequest(f.ann.ID, f.ben.ID, "")
	assert.NoError(t, err)
}

func TestSwapService_CreateRequest_ConcurrentDuplicate(t *testing.T) {
	f := newSwapFixture(t)

	// Racing creates for the same ordered pair must yield one pending
	// request: the store checks for an existing pending request and appends
	// under a single lock, so no interleaving lets two through.
	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.swaps.CreateRequest(f.ann.ID, f.ben.ID, "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes := 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	}
	assert.Equal(t, 1, successes)

	views, err := f.swaps.ListForUser(f.ann.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, models.SwapStatusPending, views[0].Status)
}

func TestSwapService_UpdateStatus(t *testing.T) {
	f := newSwapFixture(t)

	req, err := f.swaps.CreateRequest(f.ann.ID, f.ben.ID, "")
	require.NoError(t, err)

	// A stranger may not act on the request.
	_, err = f.swaps.UpdateStatus(req.ID, "someone-else", models.SwapStatusAccepted)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// The recipient accepts; the sender is notified.
	updated, err := f.swaps.UpdateStatus(req.ID, f.ben.ID, models.SwapStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusAccepted, updated.Status)

	annFeed, err := f.notifications.ListForUser(f.ann.ID)
	require.NoError(t, err)
	require.Len(t, annFeed, 1)
	assert.Equal(t, models.NotificationSwapResponse, annFeed[0].Type)
	assert.Contains(t, annFeed[0].Message, models.SwapStatusAccepted)

	_, err = f.swaps.UpdateStatus("no-such-request", f.ben.ID, models.SwapStatusAccepted)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSwapService_DeleteRequest(t *testing.T) {
	f := newSwapFixture(t)

	req, err := f.swaps.CreateRequest(f.ann.ID, f.ben.ID, "")
	require.NoError(t, err)

	// The recipient may never delete, only the sender.
	err = f.swaps.DeleteRequest(req.ID, f.ben.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// The sender may delete even after the request was resolved.
	_, err = f.swaps.UpdateStatus(req.ID, f.ben.ID, models.SwapStatusAccepted)
	require.NoError(t, err)
	require.NoError(t, f.swaps.DeleteRequest(req.ID, f.ann.ID))

	// The ledger is empty for both parties; notification history is unchanged.
	annReqs, err := f.swaps.ListForUser(f.ann.ID)
	require.NoError(t, err)
	assert.Empty(t, annReqs)
	benReqs, err := f.swaps.ListForUser(f.ben.ID)
	require.NoError(t, err)
	assert.Empty(t, benReqs)

	benFeed, err := f.notifications.ListForUser(f.ben.ID)
	require.NoError(t, err)
	assert.Len(t, benFeed, 1)
	annFeed, err := f.notifications.ListForUser(f.ann.ID)
	require.NoError(t, err)
	assert.Len(t, annFeed, 1)

	err = f.swaps.DeleteRequest(req.ID, f.ann.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSwapService_ListForUser(t *testing.T) {
	f := newSwapFixture(t)

	req, err := f.swaps.CreateRequest(f.ann.ID, f.ben.ID, "hello")
	require.NoError(t, err)

	views, err := f.swaps.ListForUser(f.ben.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, req.ID, views[0].ID)
	assert.Equal(t, "Ann", views[0].FromUser.Name)
	assert.Equal(t, "Ben", views[0].ToUser.Name)

	// A user with no requests gets an empty list, not an error.
	carol := &models.User{Name: "Carol", Email: "carol@x.com"}
	require.NoError(t, f.users.Create(carol))
	views, err = f.swaps.ListForUser(carol.ID)
	require.NoError(t, err)
	assert.Empty(t, views)
}
