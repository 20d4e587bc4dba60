package entity

import (
	"time"
)

// Banner is a bilingual promotional block shown on the landing page.
// No workflow beyond the active toggle.
type Banner struct {
	ID         string `json:"id" firestore:"id"`
	TitleEn    string `json:"title_en" firestore:"titleEn"`
	TitleAm    string `json:"title_am" firestore:"titleAm"`
	SubtitleEn string `json:"subtitle_en,omitempty" firestore:"subtitleEn,omitempty"`
	SubtitleAm string `json:"subtitle_am,omitempty" firestore:"subtitleAm,omitempty"`

	ImageURL  string `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	LinkURL   string `json:"link_url,omitempty" firestore:"linkUrl,omitempty"`
	BgColor   string `json:"bg_color,omitempty" firestore:"bgColor,omitempty"`
	TextColor string `json:"text_color,omitempty" firestore:"textColor,omitempty"`

	IsActive     bool `json:"is_active" firestore:"isActive"`
	DisplayOrder int  `json:"display_order" firestore:"displayOrder"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
