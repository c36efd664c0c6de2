package config

const (
	// DefaultDatabasePath is the default path for the application storage database
	DefaultDatabasePath = "./bookapp.db"
)
