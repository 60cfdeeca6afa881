package domain

type Store struct {
	ID          string `gorm:"primaryKey;column:id" json:"id"`
	ShopDomain  string `gorm:"column:shop_domain;not null" json:"shop_domain"`
	ShopName    string `gorm:"column:shop_name;not null" json:"shop_name"`
	AccessToken string `gorm:"column:access_token;type:text" json:"access_token"`
	IsConnected bool   `gorm:"column:is_connected;default:true" json:"is_connected"`
	ConnectedAt string `gorm:"column:connected_at" json:"connected_at"`
}

func (Store) TableName() string {
	return "stores"
}
