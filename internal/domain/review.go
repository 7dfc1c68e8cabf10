package domain

// Review is immutable once stored. UserName is a snapshot taken at submission.
type Review struct {
	ID          string      `json:"id" yaml:"id"`
	UserID      string      `json:"userId" yaml:"userId"`
	UserName    string      `json:"userName" yaml:"userName"`
	Rating      int         `json:"rating" yaml:"rating"`
	Comment     string      `json:"comment" yaml:"comment"`
	ServiceID   string      `json:"serviceId" yaml:"serviceId"`
	ServiceType ServiceType `json:"serviceType" yaml:"serviceType"`
	IsVerified  bool        `json:"isVerified" yaml:"isVerified"`
	Date        string      `json:"date" yaml:"date"`
}
