package types

import "errors"

// Config holds the store location and the stemming locale for an engine
// instance. One language is configured per deployment; changing it
// against an existing database is rejected at open time, since the
// stems persisted through associations would silently change meaning.
type Config struct {
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	Language string `json:"language" yaml:"language"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Supported stemming languages.
const (
	LanguageItalian = "italian"
	LanguageEnglish = "english"
)

// Config validation errors.
var (
	ErrDataDirEmpty    = errors.New("data dir must not be empty")
	ErrLanguageUnknown = errors.New("unknown stemming language")
)

// knownLanguages lists the languages that Validate accepts.
var knownLanguages = map[string]bool{
	LanguageItalian: true,
	LanguageEnglish: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if !knownLanguages[c.Language] {
		return ErrLanguageUnknown
	}
	return nil
}
