package domain

type ServiceType string

const (
	ServiceExcursion     ServiceType = "excursion"
	ServiceAccommodation ServiceType = "accommodation"
	ServiceDining        ServiceType = "dining"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceExcursion, ServiceAccommodation, ServiceDining:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// DateRange holds caller supplied ISO-8601 timestamps. Ordering is not checked.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Booking struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	ServiceID   string        `json:"serviceId"`
	ServiceType ServiceType   `json:"serviceType"`
	ServiceName string        `json:"serviceName"`
	Date        DateRange     `json:"date"`
	Guests      int           `json:"guests"`
	TotalAmount float64       `json:"totalAmount"`
	Currency    string        `json:"currency"`
	Status      BookingStatus `json:"status"`
	CreatedAt   string        `json:"createdAt"`
}
