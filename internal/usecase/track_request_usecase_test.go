package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/domain/pricing"
	"backing_tracks/internal/usecase/interfaces"
	mock_interfaces "backing_tracks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestTrackRequestUseCase(repo *mock_interfaces.MockITrackRequestRepository, notifier *mock_interfaces.MockINotifier) *TrackRequestUseCase {
	var n interfaces.INotifier
	if notifier != nil {
		n = notifier
	}
	uc := NewTrackRequestUseCase(repo, n, zap.NewNop(), "https://tracks.test/")
	uc.now = func() time.Time { return fixedNow }
	uc.newToken = func() (string, error) { return "tok-123", nil }
	return uc
}

func f64(v float64) *float64 { return &v }

func guestRequest() entities.TrackRequest {
	return entities.TrackRequest{
		ID:               "req-1",
		SongTitle:        "Defying Gravity",
		Options:          entities.RequestOptions{TrackType: entities.TrackTypeOneTake},
		GuestAccessToken: "tok-123",
		OwnerEmail:       "guest@example.com",
		Status:           entities.TrackRequestStatusPending,
	}
}

func TestTrackRequestUseCase_Quote(t *testing.T) {
	uc := newTestTrackRequestUseCase(nil, nil)

	t.Run("drops manual overrides", func(t *testing.T) {
		b, err := uc.Quote(context.Background(), entities.RequestOptions{
			TrackType:        entities.TrackTypePolished,
			BackingTypes:     []entities.BackingType{entities.BackingTypeNoteBash},
			ManualFinalPrice: f64(1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.TotalCost != 40 {
			t.Fatalf("expected total 40, got %v", b.TotalCost)
		}
		if b.DisplayPoint != nil {
			t.Fatalf("expected no display point, got %v", *b.DisplayPoint)
		}
	})

	t.Run("inverted manual range from client is ignored", func(t *testing.T) {
		_, err := uc.Quote(context.Background(), entities.RequestOptions{
			TrackType:          entities.TrackTypeQuick,
			ManualEstimateLow:  f64(50),
			ManualEstimateHigh: f64(10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTrackRequestUseCase_Submit(t *testing.T) {
	valid := SubmitCommand{
		SongTitle: "  Defying Gravity ",
		Email:     "guest@example.com",
		Options:   entities.RequestOptions{TrackType: entities.TrackTypeOneTake, BackingTypes: []entities.BackingType{entities.BackingTypeFullSong}},
	}

	t.Run("missing song title", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		cmd := valid
		cmd.SongTitle = "  "
		_, err := uc.Submit(context.Background(), entities.ViewerContext{}, cmd)
		if !errors.Is(err, ErrInvalidSongTitle) {
			t.Fatalf("expected ErrInvalidSongTitle, got %v", err)
		}
	})

	t.Run("unknown track type", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		cmd := valid
		cmd.Options.TrackType = "karaoke"
		_, err := uc.Submit(context.Background(), entities.ViewerContext{}, cmd)
		if !errors.Is(err, ErrInvalidTrackType) {
			t.Fatalf("expected ErrInvalidTrackType, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		cmd := valid
		cmd.Email = "not-an-email"
		_, err := uc.Submit(context.Background(), entities.ViewerContext{}, cmd)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("guest submission gets a token and a link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newTestTrackRequestUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.TrackRequest) (entities.TrackRequest, error) {
			if r.OwnerUserID != "" || r.GuestAccessToken != "tok-123" {
				t.Fatalf("unexpected credentials owner=%q token=%q", r.OwnerUserID, r.GuestAccessToken)
			}
			if r.SongTitle != "Defying Gravity" || r.Status != entities.TrackRequestStatusPending {
				t.Fatalf("unexpected request: %+v", r)
			}
			if !r.CreatedAt.Equal(fixedNow) {
				t.Fatalf("expected created_at %v, got %v", fixedNow, r.CreatedAt)
			}
			return r, nil
		})
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.Notification) error {
			if n.Kind != entities.NotificationRequestReceived || n.To != "guest@example.com" {
				t.Fatalf("unexpected notification: %+v", n)
			}
			if !strings.Contains(n.Body, "Estimated price: $10 - $30") {
				t.Fatalf("expected price line in body, got %q", n.Body)
			}
			return nil
		})

		res, err := uc.Submit(context.Background(), entities.ViewerContext{}, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.GuestAccessToken != "tok-123" {
			t.Fatalf("expected token tok-123, got %q", res.GuestAccessToken)
		}
		want := "https://tracks.test/track-requests/" + res.Request.ID + "?token=tok-123"
		if res.ViewURL != want {
			t.Fatalf("expected %q, got %q", want, res.ViewURL)
		}
		if res.Cost.TotalCost != 20 {
			t.Fatalf("expected total 20, got %v", res.Cost.TotalCost)
		}
	})

	t.Run("signed-in submission is owned and uses the account email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newTestTrackRequestUseCase(repo, notifier)
		uc.newToken = func() (string, error) {
			t.Fatalf("token must not be issued for an owned request")
			return "", nil
		}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.TrackRequest) (entities.TrackRequest, error) {
			return r, nil
		})
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		cmd := valid
		cmd.Email = ""
		res, err := uc.Submit(context.Background(), entities.ViewerContext{AuthenticatedUserID: "user-1", Email: "me@example.com"}, cmd)
		if err != nil {
			t.Fatalf("notification failure must not fail submit: %v", err)
		}
		if res.Request.OwnerUserID != "user-1" || res.Request.OwnerEmail != "me@example.com" {
			t.Fatalf("unexpected owner fields: %+v", res.Request)
		}
		if res.GuestAccessToken != "" || strings.Contains(res.ViewURL, "token=") {
			t.Fatalf("owned request must not expose a token, got %q", res.ViewURL)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.TrackRequest{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), entities.ViewerContext{}, valid)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestTrackRequestUseCase_View(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		_, err := uc.View(context.Background(), " ", entities.ViewerContext{})
		if !errors.Is(err, ErrInvalidTrackRequestID) {
			t.Fatalf("expected ErrInvalidTrackRequestID, got %v", err)
		}
	})

	t.Run("stored final price shown despite a stale range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		r := guestRequest()
		r.Options.ManualFinalPrice = f64(25)
		r.Options.ManualEstimateLow = f64(50)
		r.Options.ManualEstimateHigh = f64(10)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		v, err := uc.View(context.Background(), "req-1", entities.ViewerContext{PresentedToken: "tok-123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.PricingIssue != "" {
			t.Fatalf("unexpected pricing issue %q", v.PricingIssue)
		}
		if v.Cost == nil || v.Cost.DisplayPoint == nil || *v.Cost.DisplayPoint != 25 {
			t.Fatalf("expected display point 25, got %+v", v.Cost)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.TrackRequest{}, nil)

		_, err := uc.View(context.Background(), "req-1", entities.ViewerContext{IsOperator: true})
		if !errors.Is(err, ErrTrackRequestNotFound) {
			t.Fatalf("expected ErrTrackRequestNotFound, got %v", err)
		}
	})

	t.Run("guest token grants access and asks for sign-in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(guestRequest(), nil)

		v, err := uc.View(context.Background(), "req-1", entities.ViewerContext{PresentedToken: "tok-123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Decision.Reason != entities.AccessReasonGuestTokenMatch || !v.Decision.NeedsSignIn {
			t.Fatalf("unexpected decision: %+v", v.Decision)
		}
		if v.Cost == nil || v.Cost.TotalCost != 15 {
			t.Fatalf("expected cost 15, got %+v", v.Cost)
		}
	})

	t.Run("wrong owner is denied even with the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		r := guestRequest()
		r.OwnerUserID = "user-1"
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		_, err := uc.View(context.Background(), "req-1", entities.ViewerContext{AuthenticatedUserID: "user-2", PresentedToken: "tok-123"})
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
		if !strings.Contains(err.Error(), string(entities.AccessReasonWrongOwner)) {
			t.Fatalf("expected wrong_owner reason, got %v", err)
		}
	})

	t.Run("stored inverted range is reported instead of failing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		r := guestRequest()
		r.Options.ManualEstimateLow = f64(40)
		r.Options.ManualEstimateHigh = f64(20)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		v, err := uc.View(context.Background(), "req-1", entities.ViewerContext{IsOperator: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Cost != nil || v.PricingIssue != PricingIssueInvalidManualRange {
			t.Fatalf("expected pricing issue, got cost=%v issue=%q", v.Cost, v.PricingIssue)
		}
	})
}

func TestTrackRequestUseCase_Claim(t *testing.T) {
	signedIn := entities.ViewerContext{AuthenticatedUserID: "user-1", Email: "me@example.com", PresentedToken: "tok-123"}

	t.Run("requires sign-in", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		_, err := uc.Claim(context.Background(), "req-1", entities.ViewerContext{PresentedToken: "tok-123"})
		if !errors.Is(err, ErrAuthenticationRequired) {
			t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
		}
	})

	t.Run("token holder claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		claimed := guestRequest()
		claimed.OwnerUserID = "user-1"
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(guestRequest(), nil)
		repo.EXPECT().AssignOwner(gomock.Any(), "req-1", "user-1").Return(claimed, nil)

		v, err := uc.Claim(context.Background(), "req-1", signedIn)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Decision.Reason != entities.AccessReasonOwnerMatch || v.Decision.NeedsSignIn {
			t.Fatalf("unexpected decision after claim: %+v", v.Decision)
		}
		if v.Request.GuestAccessToken != "tok-123" {
			t.Fatalf("token must be kept after claim")
		}
	})

	t.Run("owner claiming again is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		owned := guestRequest()
		owned.OwnerUserID = "user-1"
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(owned, nil)

		if _, err := uc.Claim(context.Background(), "req-1", signedIn); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("operator cannot take over", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(guestRequest(), nil)

		_, err := uc.Claim(context.Background(), "req-1", entities.ViewerContext{AuthenticatedUserID: "op-1", IsOperator: true})
		if !errors.Is(err, ErrAlreadyClaimed) {
			t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(guestRequest(), nil)
		repo.EXPECT().AssignOwner(gomock.Any(), "req-1", "user-1").Return(entities.TrackRequest{}, nil)

		_, err := uc.Claim(context.Background(), "req-1", signedIn)
		if !errors.Is(err, ErrAlreadyClaimed) {
			t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
		}
	})
}

func TestTrackRequestUseCase_SetPricing(t *testing.T) {
	operator := entities.ViewerContext{AuthenticatedUserID: "op-1", IsOperator: true}

	t.Run("operator only", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		_, err := uc.SetPricing(context.Background(), "req-1", entities.ViewerContext{AuthenticatedUserID: "user-1"}, ManualPricing{FinalPrice: f64(10)})
		if !errors.Is(err, ErrOperatorOnly) {
			t.Fatalf("expected ErrOperatorOnly, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		_, err := uc.SetPricing(context.Background(), "req-1", operator, ManualPricing{EstimateLow: f64(-5)})
		if !errors.Is(err, ErrInvalidManualPrice) {
			t.Fatalf("expected ErrInvalidManualPrice, got %v", err)
		}
	})

	t.Run("inverted range is never saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(guestRequest(), nil)

		_, err := uc.SetPricing(context.Background(), "req-1", operator, ManualPricing{FinalPrice: f64(30), EstimateLow: f64(40), EstimateHigh: f64(20)})
		if !errors.Is(err, pricing.ErrInvalidManualRange) {
			t.Fatalf("expected ErrInvalidManualRange, got %v", err)
		}
	})

	t.Run("final price is saved and announced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newTestTrackRequestUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(guestRequest(), nil)
		repo.EXPECT().UpdateOptions(gomock.Any(), "req-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, opts entities.RequestOptions) (entities.TrackRequest, error) {
			if opts.ManualFinalPrice == nil || *opts.ManualFinalPrice != 25 {
				t.Fatalf("expected final price 25, got %v", opts.ManualFinalPrice)
			}
			r := guestRequest()
			r.Options = opts
			return r, nil
		})
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.Notification) error {
			if n.Kind != entities.NotificationPriceFinalised {
				t.Fatalf("unexpected kind %q", n.Kind)
			}
			if !strings.Contains(n.Body, "Final price: $25") || !strings.Contains(n.Body, "?token=tok-123") {
				t.Fatalf("unexpected body %q", n.Body)
			}
			return nil
		})

		v, err := uc.SetPricing(context.Background(), "req-1", operator, ManualPricing{FinalPrice: f64(25)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Cost == nil || v.Cost.DisplayPoint == nil || *v.Cost.DisplayPoint != 25 {
			t.Fatalf("expected display point 25, got %+v", v.Cost)
		}
	})

	t.Run("estimate change without final price is silent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newTestTrackRequestUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(guestRequest(), nil)
		repo.EXPECT().UpdateOptions(gomock.Any(), "req-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, opts entities.RequestOptions) (entities.TrackRequest, error) {
			r := guestRequest()
			r.Options = opts
			return r, nil
		})

		v, err := uc.SetPricing(context.Background(), "req-1", operator, ManualPricing{EstimateHigh: f64(25)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *v.Cost.DisplayLow != 10 || *v.Cost.DisplayHigh != 25 {
			t.Fatalf("expected 10-25, got %v-%v", *v.Cost.DisplayLow, *v.Cost.DisplayHigh)
		}
	})
}

func TestTrackRequestUseCase_UpdateStatus(t *testing.T) {
	operator := entities.ViewerContext{AuthenticatedUserID: "op-1", IsOperator: true}

	t.Run("invalid status", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "req-1", operator, "shipped")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.TrackRequestStatusCompleted).Return(entities.TrackRequest{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "req-1", operator, entities.TrackRequestStatusCompleted)
		if !errors.Is(err, ErrTrackRequestNotFound) {
			t.Fatalf("expected ErrTrackRequestNotFound, got %v", err)
		}
	})

	t.Run("success notifies the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newTestTrackRequestUseCase(repo, notifier)

		updated := guestRequest()
		updated.Status = entities.TrackRequestStatusInProgress
		repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.TrackRequestStatusInProgress).Return(updated, nil)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.Notification) error {
			if n.Kind != entities.NotificationStatusChanged || !strings.Contains(n.Body, "in progress") {
				t.Fatalf("unexpected notification: %+v", n)
			}
			return nil
		})

		v, err := uc.UpdateStatus(context.Background(), "req-1", operator, entities.TrackRequestStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Request.Status != entities.TrackRequestStatusInProgress {
			t.Fatalf("unexpected status %q", v.Request.Status)
		}
	})
}

func TestTrackRequestUseCase_Lists(t *testing.T) {
	t.Run("mine requires sign-in", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		_, err := uc.ListMine(context.Background(), entities.ViewerContext{})
		if !errors.Is(err, ErrAuthenticationRequired) {
			t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
		}
	})

	t.Run("mine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		owned := guestRequest()
		owned.OwnerUserID = "user-1"
		repo.EXPECT().ListByOwner(gomock.Any(), "user-1").Return([]entities.TrackRequest{owned}, nil)

		views, err := uc.ListMine(context.Background(), entities.ViewerContext{AuthenticatedUserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 || views[0].Decision.Reason != entities.AccessReasonOwnerMatch {
			t.Fatalf("unexpected views: %+v", views)
		}
	})

	t.Run("all is operator only", func(t *testing.T) {
		uc := newTestTrackRequestUseCase(nil, nil)
		_, err := uc.ListAll(context.Background(), entities.ViewerContext{AuthenticatedUserID: "user-1"})
		if !errors.Is(err, ErrOperatorOnly) {
			t.Fatalf("expected ErrOperatorOnly, got %v", err)
		}
	})

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.TrackRequest{guestRequest(), guestRequest()}, nil)

		views, err := uc.ListAll(context.Background(), entities.ViewerContext{IsOperator: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 2 || views[1].Decision.Reason != entities.AccessReasonOperatorOverride {
			t.Fatalf("unexpected views: %+v", views)
		}
	})
}

func TestTrackRequestUseCase_MigrateLegacyLink(t *testing.T) {
	legacy := func() entities.TrackRequest {
		r := guestRequest()
		r.GuestAccessToken = ""
		return r
	}

	t.Run("email mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(legacy(), nil)

		_, err := uc.MigrateLegacyLink(context.Background(), "req-1", "someone@example.com")
		if !errors.Is(err, ErrLegacyLinkMismatch) {
			t.Fatalf("expected ErrLegacyLinkMismatch, got %v", err)
		}
	})

	t.Run("request already has a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(guestRequest(), nil)

		_, err := uc.MigrateLegacyLink(context.Background(), "req-1", "guest@example.com")
		if !errors.Is(err, ErrLegacyLinkNotApplicable) {
			t.Fatalf("expected ErrLegacyLinkNotApplicable, got %v", err)
		}
	})

	t.Run("match issues a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITrackRequestRepository(ctrl)
		uc := newTestTrackRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(legacy(), nil)
		repo.EXPECT().SetGuestAccessToken(gomock.Any(), "req-1", "tok-123").Return(guestRequest(), nil)

		res, err := uc.MigrateLegacyLink(context.Background(), "req-1", "  GUEST@example.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.GuestAccessToken != "tok-123" {
			t.Fatalf("expected tok-123, got %q", res.GuestAccessToken)
		}
		if res.ViewURL != "https://tracks.test/track-requests/req-1?token=tok-123" {
			t.Fatalf("unexpected view url %q", res.ViewURL)
		}
	})
}
