package config

// Application constants
const (
	AppName = "iplstats"

	// EnvPrefix namespaces every environment variable, e.g. IPL_DATA_MATCHES_FILE
	EnvPrefix = "IPL"

	// Input files (relative to the working directory)
	DefaultMatchesFile    = "data/matches.csv"
	DefaultDeliveriesFile = "data/deliveries.csv"

	// Seasons used by the season-scoped reports
	DefaultExtrasSeason    = "2016"
	DefaultEconomySeason   = "2015"
	DefaultDismissalSeason = "2017"

	// A player must be dismissed more often than this to be reported
	DefaultDismissalThreshold = 10

	// Export
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "stderr"
	DefaultLogFile   = "logs/iplstats.log"
)

// configFileLocations are searched in order when no config file is given
var configFileLocations = []string{
	"iplstats.yaml",
	"configs/iplstats.yaml",
}
