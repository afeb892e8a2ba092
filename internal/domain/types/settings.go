package types

// SyncSettings controls whether local writes propagate to the remote
// API and how CSV ingestion materialises records.
//
// Loaded once at process start, mutated only through an explicit save.
type SyncSettings struct {
	APISyncEnabled       bool   `json:"api_sync_enabled"`
	CSVRowRecordsEnabled bool   `json:"csv_row_records_enabled"`
	CloudStorageEnabled  bool   `json:"cloud_storage_enabled"`
	BearerTokenOverride  string `json:"bearer_token_override,omitempty"`
}

// DefaultSyncSettings returns the record used when nothing has been
// persisted yet.
func DefaultSyncSettings() SyncSettings {
	return SyncSettings{
		APISyncEnabled:       true,
		CSVRowRecordsEnabled: false,
		CloudStorageEnabled:  false,
	}
}

// SettingsPatch is a partial update; nil fields are left unchanged.
type SettingsPatch struct {
	APISyncEnabled       *bool
	CSVRowRecordsEnabled *bool
	CloudStorageEnabled  *bool
	BearerTokenOverride  *string
}

// Apply merges the patch into s and returns the result.
func (p SettingsPatch) Apply(s SyncSettings) SyncSettings {
	if p.APISyncEnabled != nil {
		s.APISyncEnabled = *p.APISyncEnabled
	}
	if p.CSVRowRecordsEnabled != nil {
		s.CSVRowRecordsEnabled = *p.CSVRowRecordsEnabled
	}
	if p.CloudStorageEnabled != nil {
		s.CloudStorageEnabled = *p.CloudStorageEnabled
	}
	if p.BearerTokenOverride != nil {
		s.BearerTokenOverride = *p.BearerTokenOverride
	}
	return s
}
