package review

import "travelbook/internal/domain"

// NewReview is a review minus the fields the store assigns (id, date).
type NewReview struct {
	UserID      string
	UserName    string
	Rating      int
	Comment     string
	ServiceID   string
	ServiceType domain.ServiceType
	IsVerified  bool
}

type CreateReviewRequest struct {
	ServiceID   string `json:"serviceId" validate:"required"`
	ServiceType string `json:"serviceType" validate:"required,oneof=excursion accommodation dining"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
	Comment     string `json:"comment" validate:"required,max=2000"`
	IsVerified  bool   `json:"isVerified"`
}

func (r CreateReviewRequest) toNewReview(id domain.Identity) NewReview {
	return NewReview{
		UserID:      id.ID,
		UserName:    id.Name,
		Rating:      r.Rating,
		Comment:     r.Comment,
		ServiceID:   r.ServiceID,
		ServiceType: domain.ServiceType(r.ServiceType),
		IsVerified:  r.IsVerified,
	}
}
