package convert

import (
	"venue_tracker/be/biz/model/domain"
	"venue_tracker/be/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserId:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UserID:       m.UserId,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
