package postgres

import (
	"soko/internal/domain/entity"
	"soko/internal/infra/persistence/model"
)

// toUserDomain converts a UserModel to a domain User entity.
func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		UserType:      entity.UserType(m.UserType),
		IsAdmin:       m.IsAdmin,
		Phone:         m.Phone,
		Location:      m.Location.GeoPoint(),
		Address:       m.Address,
		ProfilePicURL: m.ProfilePicURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a UserModel.
func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		UserType:      string(u.UserType),
		IsAdmin:       u.IsAdmin,
		Phone:         u.Phone,
		Location:      model.NewLocation(u.Location),
		Address:       u.Address,
		ProfilePicURL: u.ProfilePicURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toBusinessDomain(m *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		Description:  m.Description,
		CategoryID:   m.CategoryID,
		Location:     m.Location.GeoPoint(),
		Address:      m.Address,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		Verified:     m.Verified,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromBusinessDomain(b *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Description:  b.Description,
		CategoryID:   b.CategoryID,
		Location:     model.NewLocation(b.Location),
		Address:      b.Address,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		Verified:     b.Verified,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	tags := m.AITags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Product{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		CategoryID:  m.CategoryID,
		Condition:   entity.ProductCondition(m.Condition),
		Location:    m.Location.GeoPoint(),
		Stock:       m.Stock,
		AITags:      tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Condition:   string(p.Condition),
		Location:    model.NewLocation(p.Location),
		Stock:       p.Stock,
		AITags:      p.AITags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toServiceDomain(m *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:            m.ID,
		ProviderID:    m.ProviderID,
		Title:         m.Title,
		Description:   m.Description,
		CategoryID:    m.CategoryID,
		HourlyRate:    m.HourlyRate,
		FixedPrice:    m.FixedPrice,
		Location:      m.Location.GeoPoint(),
		AIDescription: m.AIDescription,
		Verified:      m.Verified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromServiceDomain(s *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:            s.ID,
		ProviderID:    s.ProviderID,
		Title:         s.Title,
		Description:   s.Description,
		CategoryID:    s.CategoryID,
		HourlyRate:    s.HourlyRate,
		FixedPrice:    s.FixedPrice,
		Location:      model.NewLocation(s.Location),
		AIDescription: s.AIDescription,
		Verified:      s.Verified,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toAvailabilityDomain(m *model.AvailabilityModel) *entity.Availability {
	return &entity.Availability{
		ID:         m.ID,
		ServiceID:  m.ServiceID,
		ProviderID: m.ProviderID,
		Location:   m.Location.GeoPoint(),
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		CreatedAt:  m.CreatedAt,
	}
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	return &entity.Category{ID: m.ID, Name: m.Name, Icon: m.Icon}
}

func toServiceRequestDomain(m *model.ServiceRequestModel) *entity.ServiceRequest {
	return &entity.ServiceRequest{
		ID:            m.ID,
		ServiceID:     m.ServiceID,
		ProviderID:    m.ProviderID,
		CustomerID:    m.CustomerID,
		Message:       m.Message,
		Status:        entity.RequestStatus(m.Status),
		ScheduledDate: m.ScheduledDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toReviewDomain(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:         m.ID,
		ReviewerID: m.ReviewerID,
		TargetType: entity.ReviewTarget(m.TargetType),
		TargetID:   m.TargetID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
	}
}
