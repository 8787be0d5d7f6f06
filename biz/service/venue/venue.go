package venue

import (
	"context"
	"errors"

	"venue_tracker/be/biz/dal/repo"
	"venue_tracker/be/biz/model/domain"
	"venue_tracker/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

// Service manages the venues of a single owner. Every call is scoped by the
// owner id, so one user can never read or touch another user's venues.
type Service struct {
	venues repo.VenueRepository
}

func New(venues repo.VenueRepository) *Service {
	return &Service{venues: venues}
}

type Page struct {
	Venues   []*domain.Venue
	Page     int
	PageSize int
	Total    int64
}

func (s *Service) Create(ctx context.Context, ownerID string, v *domain.Venue) (*domain.Venue, errs.Error) {
	v.OwnerID = ownerID
	created, err := s.venues.Create(ctx, v)
	if err != nil {
		hlog.CtxErrorf(ctx, "create venue err: %v", err)
		return nil, errs.ServerError
	}
	hlog.CtxInfof(ctx, "venue created: %s", created.VenueID)
	return created, nil
}

func (s *Service) Get(ctx context.Context, ownerID, venueID string) (*domain.Venue, errs.Error) {
	v, err := s.venues.FindByVenueID(ctx, ownerID, venueID)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByVenueID err: %v", err)
		return nil, errs.ServerError
	}
	if v == nil {
		return nil, errs.VenueNotExist
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, ownerID string, page, pageSize int) (*Page, errs.Error) {
	page, pageSize = normalizePage(page, pageSize)
	venues, total, err := s.venues.List(ctx, ownerID, (page-1)*pageSize, pageSize)
	if err != nil {
		hlog.CtxErrorf(ctx, "list venues err: %v", err)
		return nil, errs.ServerError
	}
	return &Page{Venues: venues, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *Service) Update(ctx context.Context, ownerID string, v *domain.Venue) (*domain.Venue, errs.Error) {
	v.OwnerID = ownerID
	updated, err := s.venues.Update(ctx, v)
	if err != nil {
		hlog.CtxErrorf(ctx, "update venue err: %v", err)
		return nil, errs.ServerError
	}
	if updated == nil {
		return nil, errs.VenueNotExist
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, venueID string) errs.Error {
	if err := s.venues.Delete(ctx, ownerID, venueID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errs.VenueNotExist
		}
		hlog.CtxErrorf(ctx, "delete venue err: %v", err)
		return errs.ServerError
	}
	hlog.CtxInfof(ctx, "venue deleted: %s", venueID)
	return nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
