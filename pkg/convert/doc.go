// Package convert implements ordered conversion registries that turn
// arbitrary values into nodes of one family.
//
// A Registry holds an explicit list of Rules. Each rule is a predicate plus
// a transform; the first rule whose predicate accepts a value converts it.
// Families extend one another by cloning a registry and replacing or
// appending rules by name, never through type hierarchies:
//
//	markup := convert.New[Node]("markup", nodeRule, nilRule, textRule)
//	script := markup.Clone("script")
//	script.Replace("node", scriptNodeRule)
//
// The only failure is a ConversionError, returned when no rule accepts a
// value (an empty or misconfigured registry) or when nested values exceed
// MaxDepth.
package convert
