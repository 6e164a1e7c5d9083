package prompt

import (
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"strings"
)

// DecodeXML parses XML data into the provided struct.
// The target parameter should be a pointer to a struct that has appropriate xml tags.
func DecodeXML(data string, target interface{}) error {
	reader := strings.NewReader(data)
	decoder := xml.NewDecoder(reader)

	err := decoder.Decode(target)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode XML: %w", err)
	}

	return nil
}

// EncodeXMLToString encodes the provided struct into an XML string without unwanted HTML entities.
func EncodeXMLToString(data interface{}) (string, error) {
	var sb strings.Builder
	encoder := xml.NewEncoder(&sb)
	encoder.Indent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("failed to encode XML to string: %w", err)
	}

	if err := encoder.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush encoder: %w", err)
	}

	return sb.String(), nil
}

// UnescapeXML converts XML with HTML entities to a human-readable format
func UnescapeXML(s string) string {
	return html.UnescapeString(s)
}
