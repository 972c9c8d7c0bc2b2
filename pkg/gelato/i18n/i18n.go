// Package i18n localizes the built-in strings of gelato menus.
//
// English and Spanish defaults are embedded. Applications can add their own
// message files (TOML or JSON) and switch language at any time.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

var (
	mu      sync.Mutex
	current *I18N
)

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
	language  language.Tag
}

type MessageFile struct {
	Name    string
	Content []byte
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(embeddedLocales, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("failed to load embedded locale %s: %w", entry.Name(), err)
		}
	}

	return bundle, nil
}

func get() *I18N {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		bundle, err := newBundle()
		if err != nil {
			// Embedded files are part of the binary; this only fails on a broken build
			panic(err)
		}
		current = &I18N{
			localizer: i18n.NewLocalizer(bundle, language.English.String()),
			bundle:    bundle,
			language:  language.English,
		}
	}
	return current
}

// Init loads additional message files from disk on top of the embedded defaults.
func Init(messageFilePaths []string) error {
	bundle, err := newBundle()
	if err != nil {
		return err
	}

	for _, messageFile := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(messageFile); err != nil {
			return err
		}
	}

	install(bundle)
	return nil
}

// InitFromBytes loads additional message files from memory on top of the embedded defaults.
func InitFromBytes(messageFiles []MessageFile) error {
	bundle, err := newBundle()
	if err != nil {
		return err
	}

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return err
		}
	}

	install(bundle)
	return nil
}

func install(bundle *i18n.Bundle) {
	lang := Language()

	mu.Lock()
	defer mu.Unlock()
	current = &I18N{
		localizer: i18n.NewLocalizer(bundle, lang.String(), language.English.String()),
		bundle:    bundle,
		language:  lang,
	}
}

// Language returns the active language.
func Language() language.Tag {
	return get().language
}

func SetLanguage(lang language.Tag) {
	i := get()

	mu.Lock()
	defer mu.Unlock()
	current = &I18N{
		localizer: i18n.NewLocalizer(i.bundle, lang.String(), language.English.String()),
		bundle:    i.bundle,
		language:  lang,
	}
}

// SetWithCode parses a BCP 47 code such as "es" or "en-US" and activates it.
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// GetString retrieves a localized string by key.
// If the key is not found, it returns the key itself.
func GetString(key string) string {
	msg, err := get().localizer.Localize(&i18n.LocalizeConfig{
		MessageID: key,
	})
	if err != nil {
		return key
	}
	return msg
}

// Localize retrieves a localized string using the go-i18n struct pattern.
// The message provides the ID and the fallback text.
//
//	i18n.Localize(&i18n.Message{
//	    ID:    "welcome_user",
//	    Other: "Welcome, {{.Name}}!",
//	}, map[string]interface{}{"Name": "Alice"})
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}

	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := get().localizer.Localize(config)
	if err != nil {
		return message.Other
	}
	return msg
}

// LocalizePlural retrieves a localized string with plural support.
func LocalizePlural(message *Message, count int, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
		PluralCount:    count,
	}

	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := get().localizer.Localize(config)
	if err != nil {
		return message.Other
	}
	return msg
}
