package domain

import "time"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusScheduled = "scheduled"
)

// Heading is one entry of a post's extracted table of contents.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// BlogPost carries both the rendered content and the SEO metadata the admin
// editor maintains. PublishedAt is set the first time the post transitions to
// "published" and never changes afterwards.
type BlogPost struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	Keywords        string     `json:"keywords"`
	FocusKeyword    string     `json:"focusKeyword"`
	CanonicalURL    string     `json:"canonicalUrl"`
	OGImage         string     `json:"ogImage"`
	Category        string     `json:"category"`
	Tags            string     `json:"tags"`
	FeaturedImage   string     `json:"featuredImage"`
	CoverImage      string     `json:"coverImage"`
	Featured        bool       `json:"featured"`
	Status          string     `json:"status"`
	ReadingTime     int        `json:"readingTime"`
	WordCount       int        `json:"wordCount"`
	FleschScore     string     `json:"fleschScore"`
	Headings        []Heading  `json:"headings"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	PublishedAt     *time.Time `json:"publishedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type BlogPostPatch struct {
	Title           *string    `json:"title"`
	Slug            *string    `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Content         *string    `json:"content"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	Keywords        *string    `json:"keywords"`
	FocusKeyword    *string    `json:"focusKeyword"`
	CanonicalURL    *string    `json:"canonicalUrl"`
	OGImage         *string    `json:"ogImage"`
	Category        *string    `json:"category"`
	Tags            *string    `json:"tags"`
	FeaturedImage   *string    `json:"featuredImage"`
	CoverImage      *string    `json:"coverImage"`
	Featured        *bool      `json:"featured"`
	Status          *string    `json:"status" binding:"omitempty,oneof=draft published scheduled"`
	ReadingTime     *int       `json:"readingTime"`
	WordCount       *int       `json:"wordCount"`
	FleschScore     *string    `json:"fleschScore"`
	Headings        []Heading  `json:"headings"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
}
