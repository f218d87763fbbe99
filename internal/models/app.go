package models

// App is a user-built application whose chats are analysed.
// Timestamps are kept as recorded; they are parsed where they are compared.
type App struct {
	ID                     int    `gorm:"primaryKey;autoIncrement:false" json:"Id"`
	UserID                 int    `gorm:"index;not null" json:"UserId"`
	AppName                string `gorm:"size:255;not null" json:"AppName"`
	AppCategory            string `gorm:"size:128;index" json:"AppCategory"`
	TotalMessages          int    `gorm:"not null;default:0" json:"TotalMessages"`
	LastMessageAt          string `gorm:"size:64;index" json:"LastMessageAt"`
	CreatedAt              string `gorm:"size:64;autoCreateTime:false" json:"CreatedAt,omitempty"`
	LastChatAnalysisStatus string `gorm:"size:64;index" json:"LastChatAnalysisStatus"`
	IsDbConnected          bool   `gorm:"not null;default:false" json:"IsDbConnected"`
}

// TableName overrides the table name for App
func (App) TableName() string {
	return "apps"
}

// AppWithUser is an app joined to its owner (or the unknown user sentinel).
type AppWithUser struct {
	App
	User User `json:"User"`
}

// AppDetail is an app with its owner and its most recent log, if any.
type AppDetail struct {
	AppWithUser
	LatestLog *AppAILog `json:"latestLog,omitempty"`
}
