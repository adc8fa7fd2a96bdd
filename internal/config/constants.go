package config

// Application settings.
const (
	AppName        = "eclb"
	DBFileName     = "eclb.db"
	ConfigFileName = "config"
	EnvPrefix      = "ECLB"
	OutputPrefix   = "eclb_"
)

// Sheet defaults.
const (
	DefaultTemplate         = "avery-5160"
	DefaultLabelsPerSticker = 2
	MaxLabelsPerSticker     = 4
)

// History defaults.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500
)

// Setting keys persisted in the database.
const (
	SettingLastKind      = "last_kind"
	SettingLastBandCount = "last_band_count"
	SettingLastTolerance = "last_tolerance"
	SettingTheme         = "theme"
)
