package api

import "time"

// Auth Request/Response Types
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role"` // user, staff, admin
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile Response Types
type ProfileResponse struct {
	User User `json:"user"`
}

// Tour Types
type Tour struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Destination   string    `json:"destination"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	DurationDays  int       `json:"duration_days"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	ImageURL      string    `json:"image_url,omitempty"`
	DepartureDate string    `json:"departure_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type TourListResponse struct {
	Tours      []Tour `json:"tours"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

// TourSuggestion is one AI-assisted suggestion with its reasoning
type TourSuggestion struct {
	Tour   Tour   `json:"tour"`
	Reason string `json:"reason"`
}

type TourSuggestionsResponse struct {
	Suggestions []TourSuggestion `json:"suggestions"`
	Query       string           `json:"query"`
}

// Weather Types
type Weather struct {
	Destination string  `json:"destination"`
	Condition   string  `json:"condition"`
	TempC       float64 `json:"temp_c"`
	Humidity    int     `json:"humidity"`
	WindKph     float64 `json:"wind_kph"`
	FetchedAt   string  `json:"fetched_at"`
}

// Forum Post Types
type Post struct {
	ID             string    `json:"id"`
	AuthorEmail    string    `json:"author_email"`
	AuthorUsername string    `json:"author_username"`
	Title          string    `json:"title,omitempty"`
	Content        string    `json:"content"`
	ImageURL       string    `json:"image_url,omitempty"`
	CommentCount   int       `json:"comment_count"`
	LikeCount      int       `json:"like_count"`
	DislikeCount   int       `json:"dislike_count"`
	IsSaved        bool      `json:"is_saved"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PostListResponse struct {
	Posts      []Post `json:"posts"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

// Error Response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
