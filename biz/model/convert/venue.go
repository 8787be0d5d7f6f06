package convert

import (
	"venue_tracker/be/biz/model/domain"
	"venue_tracker/be/biz/model/storage"
)

func VenueDomainToRecord(v *domain.Venue) *storage.VenueRecord {
	if v == nil {
		return nil
	}
	return &storage.VenueRecord{
		GormModel: storage.GormModel{
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		},
		VenueId:   v.VenueID,
		OwnerId:   v.OwnerID,
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		State:     v.State,
		Country:   v.Country,
		ZipCode:   v.ZipCode,
		Capacity:  v.Capacity,
		Website:   v.Website,
		TechSpecs: v.TechSpecs,
		Notes:     v.Notes,
	}
}

func VenueRecordToDomain(m *storage.VenueRecord) *domain.Venue {
	if m == nil {
		return nil
	}
	return &domain.Venue{
		VenueID:   m.VenueId,
		OwnerID:   m.OwnerId,
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		State:     m.State,
		Country:   m.Country,
		ZipCode:   m.ZipCode,
		Capacity:  m.Capacity,
		Website:   m.Website,
		TechSpecs: m.TechSpecs,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
