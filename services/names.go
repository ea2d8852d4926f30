package services

import "strings"

// requiredName trims value and rejects what is left when it is empty.
func requiredName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", ErrBlankName
	}
	return name, nil
}
