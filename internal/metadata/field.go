// Package metadata implements the comment-body metadata grammar:
// "key/ value" lines, one blank line between entries, holding the
// document-wide fields read from and written to the CGML_META formal
// comment of a native-dialect document.
package metadata

import "github.com/go-cyberiada/cyberiadaml/internal/model"

const standardVersion10 = "1.0"

const (
	keyStandardVersion  = "standardVersion"
	keyPlatform         = "platform"
	keyPlatformVersion  = "platformVersion"
	keyPlatformLanguage = "platformLanguage"
	keyTarget           = "target"
	keyName             = "name"
	keyAuthor           = "author"
	keyContact          = "contact"
	keyDescription      = "description"
	keyVersion          = "version"
	keyDate             = "date"
	keyMarkupLanguage   = "markupLanguage"
	keyTransitionOrder  = "transitionOrder"
	keyEventPropagation = "eventPropagation"
)

const (
	valTransitionFirst = "transitionFirst"
	valExitFirst       = "exitFirst"
	valPropagate       = "propagate"
	valBlock           = "block"
)

// field declares one plain string metadata entry: its key in the comment
// body and how to read/write it on a model.Metadata, mirroring the
// original C table's (name, offsetof(value), offsetof(len)) rows as a
// Go (key, getter, setter) triple.
type field struct {
	key   string
	title string
	get   func(*model.Metadata) string
	set   func(*model.Metadata, string)
}

// fields is in the fixed order the original emits entries in; Encode
// writes the set entries in this order.
var fields = []field{
	{keyStandardVersion, "standard version",
		func(m *model.Metadata) string { return m.StandardVersion },
		func(m *model.Metadata, v string) { m.StandardVersion = v }},
	{keyPlatform, "platform name",
		func(m *model.Metadata) string { return m.Platform },
		func(m *model.Metadata, v string) { m.Platform = v }},
	{keyPlatformVersion, "platform version",
		func(m *model.Metadata) string { return m.PlatformVersion },
		func(m *model.Metadata, v string) { m.PlatformVersion = v }},
	{keyPlatformLanguage, "platform language",
		func(m *model.Metadata) string { return m.PlatformLanguage },
		func(m *model.Metadata, v string) { m.PlatformLanguage = v }},
	{keyTarget, "target system",
		func(m *model.Metadata) string { return m.Target },
		func(m *model.Metadata, v string) { m.Target = v }},
	{keyName, "document name",
		func(m *model.Metadata) string { return m.Name },
		func(m *model.Metadata, v string) { m.Name = v }},
	{keyAuthor, "document author",
		func(m *model.Metadata) string { return m.Author },
		func(m *model.Metadata, v string) { m.Author = v }},
	{keyContact, "document author's contact",
		func(m *model.Metadata) string { return m.Contact },
		func(m *model.Metadata, v string) { m.Contact = v }},
	{keyDescription, "document description",
		func(m *model.Metadata) string { return m.Description },
		func(m *model.Metadata, v string) { m.Description = v }},
	{keyVersion, "document version",
		func(m *model.Metadata) string { return m.Version },
		func(m *model.Metadata, v string) { m.Version = v }},
	{keyDate, "document date",
		func(m *model.Metadata) string { return m.Date },
		func(m *model.Metadata, v string) { m.Date = v }},
	{keyMarkupLanguage, "markup language",
		func(m *model.Metadata) string { return m.MarkupLanguage },
		func(m *model.Metadata, v string) { m.MarkupLanguage = v }},
}

func fieldByKey(key string) *field {
	for i := range fields {
		if fields[i].key == key {
			return &fields[i]
		}
	}
	return nil
}
