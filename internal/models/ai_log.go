package models

// AppAILog is a single analysed AI interaction of an app.
type AppAILog struct {
	ID                  int     `gorm:"primaryKey;autoIncrement:false" json:"Id"`
	AppID               int     `gorm:"index;not null" json:"AppId"`
	CreatedAt           string  `gorm:"size:64;index;autoCreateTime:false" json:"CreatedAt"`
	ChatAnalysisStatus  string  `gorm:"size:64;index" json:"ChatAnalysisStatus"`
	SentimentScore      float64 `gorm:"not null;default:0" json:"SentimentScore"`
	FrustrationLevel    int     `gorm:"not null;default:0" json:"FrustrationLevel"`
	TechnicalComplexity int     `gorm:"not null;default:0" json:"TechnicalComplexity"`
	Summary             *string `gorm:"type:text" json:"Summary,omitempty"`
	ErrorMessage        *string `gorm:"type:text" json:"ErrorMessage,omitempty"`
	ModelUsed           *string `gorm:"size:128" json:"ModelUsed,omitempty"`

	// Raw is the record exactly as it was imported.
	Raw JSON `json:"-"`
}

// TableName overrides the table name for AppAILog
func (AppAILog) TableName() string {
	return "app_ai_logs"
}
