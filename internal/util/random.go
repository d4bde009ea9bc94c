package util

import (
	"fmt"

	"github.com/lithammer/shortuuid/v4"
)

const (
	alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// GenerateOperationID generates an identifier in the format "op-XXXXXXXXXX"
// used to correlate the log lines and the span of a single outbound call.
func GenerateOperationID() string {
	id := shortuuid.NewWithAlphabet(alphabet)

	return fmt.Sprintf("op-%s", id[:10])
}
