package repo

import (
	"context"
	"errors"

	"venue_tracker/be/biz/model/convert"
	"venue_tracker/be/biz/model/domain"
	"venue_tracker/be/biz/model/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	FindByVenueID(ctx context.Context, ownerID, venueID string) (*domain.Venue, error)
	List(ctx context.Context, ownerID string, offset, limit int) ([]*domain.Venue, int64, error)
	Update(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	Delete(ctx context.Context, ownerID, venueID string) error
}

type VenueRepositoryGorm struct {
	db *gorm.DB
}

func NewVenueRepositoryGorm(db *gorm.DB) *VenueRepositoryGorm {
	return &VenueRepositoryGorm{db: db}
}

func (r *VenueRepositoryGorm) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	m := convert.VenueDomainToRecord(v)
	m.VenueId = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.VenueRecordToDomain(m), nil
}

func (r *VenueRepositoryGorm) FindByVenueID(ctx context.Context, ownerID, venueID string) (*domain.Venue, error) {
	m, err := r.find(ctx, ownerID, venueID)
	if err != nil || m == nil {
		return nil, err
	}
	return convert.VenueRecordToDomain(m), nil
}

func (r *VenueRepositoryGorm) List(ctx context.Context, ownerID string, offset, limit int) ([]*domain.Venue, int64, error) {
	var (
		total   int64
		records []storage.VenueRecord
	)
	q := r.db.WithContext(ctx).Model(&storage.VenueRecord{}).Where("owner_id = ?", ownerID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("id DESC").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	venues := make([]*domain.Venue, 0, len(records))
	for i := range records {
		venues = append(venues, convert.VenueRecordToDomain(&records[i]))
	}
	return venues, total, nil
}

// Update overwrites the editable fields of an owned venue. Returns nil, nil
// when the venue does not exist for that owner.
func (r *VenueRepositoryGorm) Update(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	m, err := r.find(ctx, v.OwnerID, v.VenueID)
	if err != nil || m == nil {
		return nil, err
	}

	m.Name = v.Name
	m.Address = v.Address
	m.City = v.City
	m.State = v.State
	m.Country = v.Country
	m.ZipCode = v.ZipCode
	m.Capacity = v.Capacity
	m.Website = v.Website
	m.TechSpecs = v.TechSpecs
	m.Notes = v.Notes
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return convert.VenueRecordToDomain(m), nil
}

func (r *VenueRepositoryGorm) Delete(ctx context.Context, ownerID, venueID string) error {
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND venue_id = ?", ownerID, venueID).
		Delete(&storage.VenueRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VenueRepositoryGorm) find(ctx context.Context, ownerID, venueID string) (*storage.VenueRecord, error) {
	var m storage.VenueRecord
	err := r.db.WithContext(ctx).Where("owner_id = ? AND venue_id = ?", ownerID, venueID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
