package db

import (
	"context"
	"fmt"
	"time"
)

// InsertTranslationRecordParams controls history inserts.
type InsertTranslationRecordParams struct {
	SourceLang      string
	DetectedLang    *string
	TargetLang      string
	Tone            string
	ProviderName    string
	InputText       string
	OutputText      string
	EstimatedTokens int
}

// HistoryRow is one history entry enriched for API output.
type HistoryRow struct {
	RecordUUID      string    `json:"record_uuid"`
	SourceLang      string    `json:"source_lang"`
	DetectedLang    *string   `json:"detected_lang,omitempty"`
	TargetLang      string    `json:"target_lang"`
	Tone            string    `json:"tone"`
	ProviderName    string    `json:"provider"`
	InputText       string    `json:"input_text"`
	OutputText      string    `json:"output_text"`
	EstimatedTokens int       `json:"estimated_tokens"`
	CreatedAt       time.Time `json:"created_at"`
}

func (p *Pool) InsertTranslationRecord(ctx context.Context, params InsertTranslationRecordParams) error {
	const q = `
INSERT INTO translation_history
	(source_lang, detected_lang, target_lang, tone, provider_name, input_text, output_text, estimated_tokens)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8)
`
	if _, err := p.Exec(ctx, q,
		params.SourceLang,
		params.DetectedLang,
		params.TargetLang,
		params.Tone,
		params.ProviderName,
		params.InputText,
		params.OutputText,
		params.EstimatedTokens,
	); err != nil {
		return fmt.Errorf("insert translation record: %w", err)
	}
	return nil
}

func (p *Pool) ListTranslationRecords(ctx context.Context, limit int) ([]HistoryRow, error) {
	if limit <= 0 {
		limit = 50
	}

	const q = `
SELECT
	record_uuid::text,
	source_lang,
	detected_lang,
	target_lang,
	tone,
	provider_name,
	input_text,
	output_text,
	estimated_tokens,
	created_at
FROM translation_history
ORDER BY created_at DESC, record_id DESC
LIMIT $1
`

	rows, err := p.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query translation records: %w", err)
	}
	defer rows.Close()

	items := make([]HistoryRow, 0, limit)
	for rows.Next() {
		var row HistoryRow
		if err := rows.Scan(
			&row.RecordUUID,
			&row.SourceLang,
			&row.DetectedLang,
			&row.TargetLang,
			&row.Tone,
			&row.ProviderName,
			&row.InputText,
			&row.OutputText,
			&row.EstimatedTokens,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan translation record: %w", err)
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translation records: %w", err)
	}
	return items, nil
}

func (p *Pool) ClearTranslationRecords(ctx context.Context) (int64, error) {
	tag, err := p.Exec(ctx, `DELETE FROM translation_history`)
	if err != nil {
		return 0, fmt.Errorf("clear translation records: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (p *Pool) CountTranslationRecords(ctx context.Context) (int64, error) {
	var count int64
	if err := p.QueryRow(ctx, `SELECT COUNT(*) FROM translation_history`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count translation records: %w", err)
	}
	return count, nil
}
