package Scheduling

import (
	"strings"

	"HealingRays/Models"
)

// NormalizeAttachments converges the three historical attachment shapes
// (bare string, partial object, full object) into the canonical persisted
// form. pathFromURL reverses URL generation when only a url is supplied;
// entries that yield no resolvable path are dropped. The derived url is never
// persisted, it is recomputed at read time.
func NormalizeAttachments(raw []interface{}, pathFromURL func(string) string) Models.Attachments {
	attachments := Models.Attachments{}
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			if path := resolvePath(v, pathFromURL); path != "" {
				attachments = append(attachments, Models.Attachment{Path: path})
			}
		case map[string]interface{}:
			att := fromObject(v, pathFromURL)
			if att.Path != "" {
				attachments = append(attachments, att)
			}
		}
	}
	return attachments
}

func fromObject(obj map[string]interface{}, pathFromURL func(string) string) Models.Attachment {
	att := Models.Attachment{}

	if path := stringField(obj, "path"); path != "" {
		att.Path = resolvePath(path, pathFromURL)
	} else if url := stringField(obj, "url"); url != "" {
		att.Path = resolvePath(url, pathFromURL)
	}

	// original_name has accumulated aliases across the historical shapes
	att.OriginalName = stringField(obj, "original_name", "name", "fileName")
	att.MimeType = stringField(obj, "mime_type", "type")

	switch size := obj["size"].(type) {
	case float64:
		att.Size = int64(size)
	case int64:
		att.Size = size
	case int:
		att.Size = int64(size)
	}

	return att
}

func stringField(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func resolvePath(value string, pathFromURL func(string) string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") || strings.Contains(value, "?") {
		if pathFromURL != nil {
			return pathFromURL(value)
		}
	}
	return value
}
