package schema

// User is an account record from the users collection. On the wire the
// company name is nested under company.name; it is flattened here because
// nothing else of the company object is used.
type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	CompanyName string `json:"companyName"`
}
