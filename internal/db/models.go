package db

import "time"

// TranslationRecord maps translation_history: one completed, successful
// translation kept for the portal's history view. Failures are never
// recorded.
type TranslationRecord struct {
	RecordID        int64     `gorm:"column:record_id;primaryKey;autoIncrement"`
	RecordUUID      string    `gorm:"column:record_uuid;type:uuid;not null;default:gen_random_uuid();unique"`
	SourceLang      string    `gorm:"column:source_lang;type:text;not null;default:auto"`
	DetectedLang    *string   `gorm:"column:detected_lang;type:text"`
	TargetLang      string    `gorm:"column:target_lang;type:text;not null"`
	Tone            string    `gorm:"column:tone;type:text;not null;default:default"`
	ProviderName    string    `gorm:"column:provider_name;type:text;not null"`
	InputText       string    `gorm:"column:input_text;type:text;not null"`
	OutputText      string    `gorm:"column:output_text;type:text;not null"`
	EstimatedTokens int       `gorm:"column:estimated_tokens;type:integer;not null;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (TranslationRecord) TableName() string { return "translation_history" }

func autoMigrateModels() []any {
	return []any{
		&TranslationRecord{},
	}
}
