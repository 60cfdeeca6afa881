package domain

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

type Question struct {
	ID         string `gorm:"primaryKey;column:id" json:"id"`
	StoreID    string `gorm:"column:store_id;index;not null" json:"store_id"`
	Question   string `gorm:"column:question;type:text" json:"question"`
	Answer     string `gorm:"column:answer;type:text" json:"answer"`
	Confidence string `gorm:"column:confidence" json:"confidence"`
	ShopifyQL  string `gorm:"column:shopify_ql;type:text" json:"shopify_ql,omitempty"`
	Intent     string `gorm:"column:intent" json:"intent,omitempty"`
	CreatedAt  string `gorm:"column:created_at;index" json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}
