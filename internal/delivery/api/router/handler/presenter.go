package handler

import (
	"time"

	"soko/internal/delivery/api/response"
	"soko/internal/domain/entity"
	"soko/internal/domain/proximity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// locationDTO is a point as clients see it: latitude first.
type locationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func toLocation(p entity.GeoPoint) locationDTO {
	return locationDTO{Lat: p.Lat, Lng: p.Lon}
}

// locationBody is a client supplied point. Both axes are required when the
// object is present; ranges are checked by entity.NewGeoPoint.
type locationBody struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

func (b *locationBody) point() (*entity.GeoPoint, error) {
	if b == nil {
		return nil, nil
	}
	p, err := entity.NewGeoPoint(*b.Lng, *b.Lat)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// presentPage renders a proximity page. Distances are only present when
// the page was filtered by an origin.
func presentPage[T any, R any](c echo.Context, page *proximity.Page[T], present func(T, *float64) R) error {
	results := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		results = append(results, present(item.Entity, item.DistanceMeters))
	}

	return response.Paginated(c, response.PageInfo{
		Total:       page.Total,
		Page:        page.Page,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	}, results)
}

type businessResponse struct {
	ID           uuid.UUID   `json:"id"`
	Owner        uuid.UUID   `json:"owner"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     *uuid.UUID  `json:"category"`
	Location     locationDTO `json:"location"`
	Address      string      `json:"address"`
	ContactEmail string      `json:"contact_email"`
	ContactPhone string      `json:"contact_phone"`
	Verified     bool        `json:"verified"`
	CreatedAt    time.Time   `json:"created_at"`
	Distance     *float64    `json:"distance,omitempty"`
}

func presentBusiness(b *entity.Business, distance *float64) businessResponse {
	return businessResponse{
		ID:           b.ID,
		Owner:        b.OwnerID,
		Name:         b.Name,
		Description:  b.Description,
		Category:     b.CategoryID,
		Location:     toLocation(b.Location),
		Address:      b.Address,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		Verified:     b.Verified,
		CreatedAt:    b.CreatedAt,
		Distance:     distance,
	}
}

type productResponse struct {
	ID          uuid.UUID   `json:"id"`
	Business    uuid.UUID   `json:"business"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Category    *uuid.UUID  `json:"category"`
	Condition   string      `json:"condition"`
	Location    locationDTO `json:"location"`
	Stock       int         `json:"stock"`
	AITags      []string    `json:"ai_tags"`
	CreatedAt   time.Time   `json:"created_at"`
	Distance    *float64    `json:"distance,omitempty"`
}

func presentProduct(p *entity.Product, distance *float64) productResponse {
	tags := p.AITags
	if tags == nil {
		tags = []string{}
	}

	return productResponse{
		ID:          p.ID,
		Business:    p.BusinessID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.CategoryID,
		Condition:   string(p.Condition),
		Location:    toLocation(p.Location),
		Stock:       p.Stock,
		AITags:      tags,
		CreatedAt:   p.CreatedAt,
		Distance:    distance,
	}
}

type serviceResponse struct {
	ID            uuid.UUID   `json:"id"`
	Provider      uuid.UUID   `json:"provider"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Category      *uuid.UUID  `json:"category"`
	HourlyRate    *float64    `json:"hourly_rate"`
	FixedPrice    *float64    `json:"fixed_price"`
	Location      locationDTO `json:"location"`
	AIDescription string      `json:"ai_description"`
	Verified      bool        `json:"verified"`
	CreatedAt     time.Time   `json:"created_at"`
	Distance      *float64    `json:"distance,omitempty"`
}

func presentService(s *entity.Service, distance *float64) serviceResponse {
	return serviceResponse{
		ID:            s.ID,
		Provider:      s.ProviderID,
		Title:         s.Title,
		Description:   s.Description,
		Category:      s.CategoryID,
		HourlyRate:    s.HourlyRate,
		FixedPrice:    s.FixedPrice,
		Location:      toLocation(s.Location),
		AIDescription: s.AIDescription,
		Verified:      s.Verified,
		CreatedAt:     s.CreatedAt,
		Distance:      distance,
	}
}

type availabilityResponse struct {
	ID        uuid.UUID   `json:"id"`
	Service   uuid.UUID   `json:"service"`
	Location  locationDTO `json:"location"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	Distance  *float64    `json:"distance,omitempty"`
}

func presentAvailability(a *entity.Availability, distance *float64) availabilityResponse {
	return availabilityResponse{
		ID:        a.ID,
		Service:   a.ServiceID,
		Location:  toLocation(a.Location),
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Distance:  distance,
	}
}

type categoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"`
}

func presentCategory(c *entity.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Icon: c.Icon}
}

type serviceRequestResponse struct {
	ID            uuid.UUID  `json:"id"`
	Service       uuid.UUID  `json:"service"`
	Customer      uuid.UUID  `json:"customer"`
	Message       string     `json:"message"`
	Status        string     `json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	CreatedAt     time.Time  `json:"created_at"`
}

func presentServiceRequest(r *entity.ServiceRequest) serviceRequestResponse {
	return serviceRequestResponse{
		ID:            r.ID,
		Service:       r.ServiceID,
		Customer:      r.CustomerID,
		Message:       r.Message,
		Status:        string(r.Status),
		ScheduledDate: r.ScheduledDate,
		CreatedAt:     r.CreatedAt,
	}
}

type reviewResponse struct {
	ID         uuid.UUID `json:"id"`
	Reviewer   uuid.UUID `json:"reviewer"`
	TargetType string    `json:"target_type"`
	TargetID   uuid.UUID `json:"target_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

func presentReview(r *entity.Review) reviewResponse {
	return reviewResponse{
		ID:         r.ID,
		Reviewer:   r.ReviewerID,
		TargetType: string(r.TargetType),
		TargetID:   r.TargetID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

type userResponse struct {
	ID         uuid.UUID   `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	UserType   string      `json:"user_type"`
	IsAdmin    bool        `json:"is_admin"`
	Phone      string      `json:"phone"`
	Address    string      `json:"address"`
	Location   locationDTO `json:"location"`
	ProfilePic string      `json:"profile_pic"`
	CreatedAt  time.Time   `json:"created_at"`
}

func presentUser(u *entity.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		UserType:   string(u.UserType),
		IsAdmin:    u.IsAdmin,
		Phone:      u.Phone,
		Address:    u.Address,
		Location:   toLocation(u.Location),
		ProfilePic: u.ProfilePicURL,
		CreatedAt:  u.CreatedAt,
	}
}

func presentAll[T any, R any](items []T, present func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, present(item))
	}

	return out
}
