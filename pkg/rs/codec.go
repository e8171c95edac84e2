package rs

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"mime"
	"strings"
)

// formatOf picks the wire format of a response from its Content-Type,
// falling back to the client format when the header is missing or names
// neither XML nor JSON.
func formatOf(contentType string, fallback Format) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fallback
	}
	switch {
	case strings.HasSuffix(mediaType, "+xml"), strings.HasSuffix(mediaType, "/xml"):
		return FormatXML
	case strings.HasSuffix(mediaType, "+json"), strings.HasSuffix(mediaType, "/json"):
		return FormatJSON
	default:
		return fallback
	}
}

func decode(format Format, body []byte, v any) error {
	switch format {
	case FormatXML:
		return xml.Unmarshal(body, v)
	case FormatJSON:
		return json.Unmarshal(body, v)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func encode(format Format, v any) ([]byte, error) {
	switch format {
	case FormatXML:
		data, err := xml.Marshal(v)
		if err != nil {
			return nil, err
		}
		return append([]byte(xml.Header), data...), nil
	case FormatJSON:
		return json.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
