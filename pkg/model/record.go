package model

// LikeRecord 化合物点赞记录
type LikeRecord struct {
	BaseModel
	ID  int64  `json:"id" gorm:"primaryKey"`
	IP  string `json:"ip" gorm:"type:varchar(64);not null;index:idx_ip_cid"`
	CID int64  `json:"cid" gorm:"column:cid;not null;index:idx_ip_cid"`
}

// TableName 表名
func (LikeRecord) TableName() string {
	return "compound_like_record"
}
