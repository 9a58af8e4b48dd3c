package utils

import (
	"encoding/base64"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ulidMutex   sync.Mutex
	ulidEntropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// GenerateULIDString allocates a new record identifier. Allocation is
// serialized so identifiers stay unique and monotonic under concurrent
// requests.
func GenerateULIDString() string {
	ulidMutex.Lock()
	defer ulidMutex.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}

// DecodeBase64Image decodes a base64 payload, accepting both raw base64
// and data URLs ("data:image/jpeg;base64,...").
func DecodeBase64Image(data string) ([]byte, error) {
	if data == "" {
		return nil, errors.New("empty image payload")
	}
	if strings.Contains(data, ",") {
		parts := strings.SplitN(data, ",", 2)
		data = parts[1]
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

func GetStringPointer(text string) *string {
	return &text
}

func GetBooleanPointer(data bool) *bool {
	return &data
}

func GetFloat64Pointer(data float64) *float64 {
	return &data
}

func GetInt64Pointer(data int64) *int64 {
	return &data
}

func GetUIntPointer(data uint) *uint {
	return &data
}

func HasItemString(arr *[]string, target string) bool {
	for _, v := range *arr {
		if v == target {
			return true
		}
	}
	return false
}
