package pavlog

import (
	stderrs "errors"
	"fmt"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// errorStack returns the text stored under KeyStack for an error event: the
// message followed by the innermost recorded stack trace when the chain
// carries one, otherwise the joined cause history.
func errorStack(err error) string {
	var st stackTracer
	found := false
	for e := err; e != nil; e = stderrs.Unwrap(e) {
		if s, ok := e.(stackTracer); ok {
			st, found = s, true
		}
	}
	if found {
		return fmt.Sprintf("%s%+v", err.Error(), st.StackTrace())
	}

	return joinChain(buildErrorChain(err))
}

// buildErrorChain walks an error's cause chain and returns one link per
// error, outermost first. A DetailedError link is rendered as "op: msg" and
// its Cause() is followed in preference to errors.Unwrap. Depth is bounded and
// repeated messages stop the walk.
func buildErrorChain(err error) []string {
	const maxDepth = 50
	var chain []string
	seen := map[string]bool{}

	for visited := 0; err != nil && visited < maxDepth; visited++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, chainLink(string(dErr.Op()), dErr.Error()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = stderrs.Unwrap(err)
	}
	return chain
}

func chainLink(op, msg string) string {
	if op == emptyString {
		return msg
	}
	return op + ": " + msg
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}
