package dto

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetUsernameRequest carries the session token in the body; the endpoint
// predates the Authorization-header flow and is kept for the web client.
type GetUsernameRequest struct {
	Csrid string `json:"csrid"`
}

// UpdateProfileRequest is a partial update; nil pointers mean "leave as is".
// Email and Password changes are delegated to the identity service.
type UpdateProfileRequest struct {
	Username    *string                `json:"username"`
	Bio         *string                `json:"bio"`
	Location    *string                `json:"location"`
	SocialLinks map[string]interface{} `json:"social_links"`
	Preferences map[string]interface{} `json:"preferences"`
	Email       *string                `json:"email"`
	Password    *string                `json:"password"`
}
