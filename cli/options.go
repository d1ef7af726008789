package cli

import (
	"os"

	"github.com/spf13/pflag"

	"lovedays/counter"
	"lovedays/i18n"
	"lovedays/tui"
)

// LangEnvVar selects the display language when --lang is not given.
const LangEnvVar = "LOVEDAYS_LANG"

// GlobalOptions hold the flags shared by all commands.
type GlobalOptions struct {
	Lang   string
	Accent string

	clock  counter.Clock
	getenv func(string) string
	launch func(tui.Options) error
}

func newGlobalOptions() *GlobalOptions {
	return &GlobalOptions{
		clock:  counter.RealClock{},
		getenv: os.Getenv,
		launch: tui.LaunchTUI,
	}
}

// AddFlags registers the global flags on f.
func (opts *GlobalOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&opts.Lang, "lang", "", "display `language` (RU, EN); defaults to $"+LangEnvVar+", then the system locale")
	f.StringVar(&opts.Accent, "accent", tui.DefaultAccent, "accent `colour` name or #rrggbb")
}

// language resolves the language code: flag, then environment, then the
// system locale, then the default pack.
func (opts *GlobalOptions) language(catalog *i18n.Catalog) string {
	if opts.Lang != "" {
		return opts.Lang
	}
	if code := opts.getenv(LangEnvVar); code != "" {
		return code
	}
	if code, ok := catalog.Detect(opts.getenv("LC_ALL"), opts.getenv("LC_MESSAGES"), opts.getenv("LANG")); ok {
		return code
	}
	return i18n.DefaultLanguage
}

// Localizer loads the language packs and selects the configured language.
func (opts *GlobalOptions) Localizer() (*i18n.Localizer, error) {
	catalog, err := i18n.LoadCatalog()
	if err != nil {
		return nil, err
	}
	return i18n.NewLocalizer(catalog, opts.language(catalog))
}
