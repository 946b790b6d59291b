package migrations

// DecoderStats creates the decoder_stats table for periodic counter snapshots
var DecoderStats = &Migration{
	ID:   "002_decoder_stats",
	Name: "002_decoder_stats",
	UpSQL: `
		CREATE TABLE IF NOT EXISTS decoder_stats (
			id BIGSERIAL PRIMARY KEY,
			time TIMESTAMPTZ NOT NULL,
			session_id TEXT NOT NULL,
			framed_sentences BIGINT NOT NULL,
			extracted_fixes BIGINT NOT NULL,
			no_fix_sentences BIGINT NOT NULL,
			malformed_sentences BIGINT NOT NULL,
			suppressed_cycles BIGINT NOT NULL,
			published_fixes BIGINT NOT NULL,
			last_fix_time TIMESTAMPTZ,
			processing_time_ms BIGINT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_decoder_stats_session_id ON decoder_stats (session_id);
	`,
	DownSQL: `
		DROP TABLE IF EXISTS decoder_stats;
	`,
}
