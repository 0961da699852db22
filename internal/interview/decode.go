package interview

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/spigell/interview-insights/internal/feedback"
)

var feedbackType = reflect.TypeOf(feedback.Feedback{})

// DecodeInterview converts a loosely typed record (decoded JSON or YAML) into
// an Interview. Numbers given as strings are converted, null and missing
// fields keep their zero values. An unusable rating becomes 0 and notes that
// are not text become empty, so one bad feedback record never fails the
// interview.
func DecodeInterview(raw map[string]any) (Interview, error) {
	var iv Interview

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &iv,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			looseFeedbackHook,
		),
	})
	if err != nil {
		return iv, fmt.Errorf("create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return iv, fmt.Errorf("decode interview: %w", err)
	}

	return iv, nil
}

// LoadFile reads an interview from a YAML or JSON file.
func LoadFile(path string) (Interview, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Interview{}, fmt.Errorf("reading interview file %q: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Interview{}, fmt.Errorf("parsing interview file %q: %w", path, err)
	}

	if raw == nil {
		return Interview{}, fmt.Errorf("interview file %q is empty", path)
	}

	return DecodeInterview(raw)
}

// looseFeedbackHook replaces malformed rating and notes values of a feedback
// record with values that decode to the defaults.
func looseFeedbackHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != feedbackType {
		return data, nil
	}

	raw, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}

	fixed := make(map[string]any, len(raw))
	for key, value := range raw {
		switch strings.ToLower(key) {
		case "rating":
			value = looseRating(value)
		case "notes":
			if _, isText := value.(string); !isText && value != nil {
				value = ""
			}
		}
		fixed[key] = value
	}

	return fixed, nil
}

func looseRating(value any) any {
	switch v := value.(type) {
	case nil, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return v
	case string:
		rating, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0.0
		}
		return rating
	default:
		return 0.0
	}
}
