package migrations

// InitialSchema creates the fixes table
var InitialSchema = &Migration{
	ID:   "001_initial_schema",
	Name: "001_initial_schema",
	UpSQL: `
		CREATE TABLE IF NOT EXISTS fixes (
			id BIGSERIAL PRIMARY KEY,
			time TIMESTAMPTZ NOT NULL,
			session_id TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			source TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_fixes_time ON fixes (time DESC);
		CREATE INDEX IF NOT EXISTS idx_fixes_session_id ON fixes (session_id);
	`,
	DownSQL: `
		DROP TABLE IF EXISTS fixes;
	`,
}
