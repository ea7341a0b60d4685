package actions

import (
	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
)

// Echo prints the raw text after the verb, inner spacing included.
func Echo(call dispatchers.Call) error {
	call.Out.Append(call.Line.Rest(1), domain.ToneDefault)
	return nil
}
