package models

// PostType classifies feed posts.
type PostType string

const (
	PostNews         PostType = "news"
	PostEvent        PostType = "event"
	PostAnnouncement PostType = "announcement"
	PostAchievement  PostType = "achievement"
)

// Valid reports whether t is a known post type.
func (t PostType) Valid() bool {
	switch t {
	case PostNews, PostEvent, PostAnnouncement, PostAchievement:
		return true
	}
	return false
}

// Comment is a reader comment on a post.
type Comment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// Post is one entry of the news feed.
type Post struct {
	ID       int64     `json:"id"`
	Type     PostType  `json:"type"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Author   string    `json:"author"`
	Date     string    `json:"date"`
	Image    string    `json:"image"`
	Category string    `json:"category"`
	Featured bool      `json:"featured"`
	Likes    int       `json:"likes"`
	Views    int       `json:"views"`
	Comments []Comment `json:"comments"`
}

// PostFilter narrows post listings.
type PostFilter struct {
	Type     PostType
	Category string
	Page     int
	PageSize int
}

// CreatePostRequest is the admin payload for publishing a post.
type CreatePostRequest struct {
	Type     PostType `json:"type" validate:"omitempty,oneof=news event announcement achievement"`
	Title    string   `json:"title" validate:"required,max=200"`
	Content  string   `json:"content" validate:"required"`
	Author   string   `json:"author" validate:"required,max=100"`
	Image    string   `json:"image" validate:"omitempty,max=500"`
	Category string   `json:"category" validate:"omitempty,max=100"`
	Featured bool     `json:"featured"`
}

// UpdatePostRequest patches an existing post; nil fields are kept.
type UpdatePostRequest struct {
	Type     *PostType `json:"type" validate:"omitempty,oneof=news event announcement achievement"`
	Title    *string   `json:"title" validate:"omitempty,max=200"`
	Content  *string   `json:"content"`
	Author   *string   `json:"author" validate:"omitempty,max=100"`
	Image    *string   `json:"image" validate:"omitempty,max=500"`
	Category *string   `json:"category" validate:"omitempty,max=100"`
	Featured *bool     `json:"featured"`
}

// CommentRequest is the public payload for commenting.
type CommentRequest struct {
	Text   string `json:"text" validate:"required"`
	Author string `json:"author" validate:"omitempty,max=100"`
}

// PostShare is the data a client needs to share a post.
type PostShare struct {
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	URL       string `json:"url"`
	ShareText string `json:"shareText"`
}
