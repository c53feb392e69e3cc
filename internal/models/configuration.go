package models

// ConfigurationEntry is a generic key-value row used for app settings and
// for the migration-completion flag. Values are opaque strings; callers
// serialize structured settings themselves.
type ConfigurationEntry struct {
	// Column named config_key because KEY is reserved in MySQL
	Key   string `gorm:"primaryKey;column:config_key;size:255" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

// TableName overrides the table name for ConfigurationEntry
func (ConfigurationEntry) TableName() string {
	return "configuration"
}
