package cmd

import (
	"fmt"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	// FieldWarehouse names the warehouse holding samples handed to schools.
	FieldWarehouse     string
	AllowNegativeStock bool
	// CompanyName and CompanyAbbr create the default company on install
	// when none exists yet.
	CompanyName          string
	CompanyAbbr          string
	CustomerGroup        string
	Territory            string
	OverdueSweepSchedule string
}

// PostgresDSN builds the gorm postgres connection string.
func (c Config) PostgresDSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode,
	)
}
