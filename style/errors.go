package style

import "fmt"

// ValueParseError is returned when a raw value does not match the grammar
// of its property.
type ValueParseError struct {
	Property string
	Reason   string
}

func (e *ValueParseError) Error() string {
	return fmt.Sprintf("invalid value for property '%s': %s", e.Property, e.Reason)
}

// UnknownPropertyError is returned for property names which do not denote
// a style property.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown property '%s'", e.Name)
}
