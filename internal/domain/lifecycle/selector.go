package lifecycle

import (
	"regexp"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
)

// selector is a compiled AgentSelector. A nil id and nil name matches
// every agent. A name wrapped in slashes ("/^AGV.*$/") is compiled as a
// regular expression; any other name is matched exactly.
type selector struct {
	id       string
	hasID    bool
	name     string
	hasName  bool
	nameExpr *regexp.Regexp
}

// compileSelector parses an AgentSelector, compiling a regex name
// pattern once up front so the stream fails fast on a bad pattern
// before any lifecycle event is emitted.
func compileSelector(s *tncpb.AgentSelector) (*selector, error) {
	sel := &selector{}

	if s == nil {
		return sel, nil
	}
	if s.IdentityId != nil {
		sel.id = *s.IdentityId
		sel.hasID = true
		return sel, nil
	}
	if s.IdentityName != nil {
		name := *s.IdentityName
		sel.name = name
		sel.hasName = true
		if strings.HasPrefix(name, "/") && strings.HasSuffix(name, "/") && len(name) >= 2 {
			pattern := name[1 : len(name)-1]
			expr, err := regexp.Compile(pattern)
			if err != nil {
				return nil, status.Errorf(codes.InvalidArgument, "invalid regex in identity_name selector: %v", err)
			}
			sel.nameExpr = expr
		}
	}
	return sel, nil
}

func (s *selector) matches(id, name string) bool {
	if s.hasID {
		return s.id == id
	}
	if s.hasName {
		if s.nameExpr != nil {
			return s.nameExpr.MatchString(name)
		}
		return s.name == name
	}
	return true
}
