package markup

import "strings"

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return Prop("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return Prop("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return Prop("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") renders data-id="123".
func Data(key string, value any) Attr { return Prop("data-"+key, value) }

// Accessibility

// Role sets the role attribute.
func Role(role string) Attr { return Prop("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return Prop("aria-label", label) }

// Global attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return Prop("lang", lang) }

// Hidden marks the element hidden.
func Hidden() Attr { return Bare("hidden") }

// Links and resources

// Href sets the href attribute.
func Href(url string) Attr { return Prop("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return Prop("src", url) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return Prop("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return Prop("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return Prop("type", t) }

// Disabled, Checked and Required are boolean attributes.
func Disabled() Attr { return Bare("disabled") }

func Checked() Attr { return Bare("checked") }

func Required() Attr { return Bare("required") }
