package bridge

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// validateName enforces the channel id / operation name shape shared by
// both bus patterns: non-empty, and free of characters that would
// corrupt MQTT topic segments.
func validateName(kind, name string) error {
	if name == "" {
		return status.Errorf(codes.InvalidArgument, "%s must not be empty", kind)
	}
	if strings.ContainsAny(name, "\x00#+/") {
		return status.Errorf(codes.InvalidArgument, "%s must not contain NUL, '#', '+' or '/'", kind)
	}
	return nil
}
