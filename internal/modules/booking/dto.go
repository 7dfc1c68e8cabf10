package booking

import "travelbook/internal/domain"

// NewBooking is a booking minus the fields the store assigns (id, createdAt, status).
type NewBooking struct {
	UserID      string
	ServiceID   string
	ServiceType domain.ServiceType
	ServiceName string
	Date        domain.DateRange
	Guests      int
	TotalAmount float64
	Currency    string
}

type CreateBookingRequest struct {
	ServiceID   string  `json:"serviceId" validate:"required"`
	ServiceType string  `json:"serviceType" validate:"required,oneof=excursion accommodation dining"`
	ServiceName string  `json:"serviceName" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     string  `json:"endDate" validate:"required"`
	Guests      int     `json:"guests" validate:"gte=1"`
	TotalAmount float64 `json:"totalAmount" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"required,len=3"`
}

func (r CreateBookingRequest) toNewBooking(userID string) NewBooking {
	return NewBooking{
		UserID:      userID,
		ServiceID:   r.ServiceID,
		ServiceType: domain.ServiceType(r.ServiceType),
		ServiceName: r.ServiceName,
		Date:        domain.DateRange{Start: r.StartDate, End: r.EndDate},
		Guests:      r.Guests,
		TotalAmount: r.TotalAmount,
		Currency:    r.Currency,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
