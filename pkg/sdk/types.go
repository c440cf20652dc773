package sdk

// LoginCredentials carry an email/password pair.
type LoginCredentials struct {
	Email    string
	Password string
}

// SignUpCredentials extend login credentials with the profile fields the
// provisioning webhook later copies into the profiles table.
type SignUpCredentials struct {
	LoginCredentials
	FirstName string
	LastName  string
}

// Area is a published study area within a tenant's content catalog.
type Area struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	OrderIndex  int    `json:"order_index"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Topic is a study topic, optionally weighted for exam emphasis.
type Topic struct {
	ID         string   `json:"id"`
	AreaID     string   `json:"area_id"`
	ExamID     string   `json:"exam_id,omitempty"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Weight     *float64 `json:"weight,omitempty"`
	OrderIndex int      `json:"order_index"`
	Status     string   `json:"status,omitempty"`
	CreatedAt  string   `json:"created_at,omitempty"`
}

// AreaWithTopics pairs an area with its published topics.
type AreaWithTopics struct {
	Area
	Topics []Topic `json:"topics"`
}
