package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/\r\n]+={0,2}$`)

// validateImagePayload accepts raw base64 or a data URL carrying base64
// image bytes. Decodability is checked downstream, this only screens out
// payloads that cannot possibly be an encoded image.
func validateImagePayload(fl validator.FieldLevel) bool {
	payload := strings.TrimSpace(fl.Field().String())
	if payload == "" {
		return false
	}
	if strings.HasPrefix(payload, "data:") {
		separator := strings.Index(payload, ",")
		if separator == -1 {
			return false
		}
		if !strings.Contains(payload[:separator], ";base64") {
			return false
		}
		payload = payload[separator+1:]
	}
	if len(payload) < 8 {
		return false
	}
	return base64Pattern.MatchString(payload)
}
