package config

import "fmt"

// MissingSectionError reports that the configuration file has no such section.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("section %q not found", e.Section)
}

// MissingKeyError reports a required key absent from its section.
type MissingKeyError struct {
	Section string
	Key     string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key %q not found in section %q", e.Key, e.Section)
}

// EmptyValueError reports a required key whose value is blank.
type EmptyValueError struct {
	Section string
	Key     string
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("key %q in section %q has an empty value", e.Key, e.Section)
}
