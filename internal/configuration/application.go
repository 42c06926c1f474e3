package configuration

const (
	// SettingScheme is the key configuring the scheme name the file source
	// registers under.
	SettingScheme = "FILESOURCE_SCHEME"

	// SettingLogLevel is the key configuring the application log level.
	SettingLogLevel = "FILESOURCE_LOG_LEVEL"

	// SettingUIEnabled is the key configuring whether the browser UI
	// launches.
	SettingUIEnabled = "FILESOURCE_UI"

	// DefaultScheme is the scheme name used when none is configured.
	DefaultScheme = "file"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

// AppSettings is the principal structure holding the application
// configuration.
type AppSettings struct {
	Scheme    string
	LogLevel  string
	UIEnabled bool
}

// EstablishSettings maps a read key-value configuration onto a pointer to a
// new [AppSettings], substituting defaults for any keys not present.
func (c *Handler) EstablishSettings(envMap map[string]string) *AppSettings {
	settings := &AppSettings{
		Scheme:    DefaultScheme,
		LogLevel:  DefaultLogLevel,
		UIEnabled: c.MapKeyToBool(envMap, SettingUIEnabled),
	}

	if scheme := c.MapKeyToString(envMap, SettingScheme); scheme != "" {
		settings.Scheme = scheme
	}

	if level := c.MapKeyToString(envMap, SettingLogLevel); level != "" {
		settings.LogLevel = level
	}

	return settings
}
