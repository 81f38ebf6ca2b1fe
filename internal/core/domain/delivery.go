package domain

// Contact identifies the prospect who asked for a media plan.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Delivery is a priced media plan addressed to a prospect.
type Delivery struct {
	Contact Contact
	Plan    MediaPlan
}

// DeliveryResult reports which notification messages were accepted by the
// mail provider.
type DeliveryResult struct {
	ClientEmailSent bool `json:"clientEmailSent"`
	AdminEmailSent  bool `json:"adminEmailSent"`
}
