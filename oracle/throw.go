package oracle

import (
	"github.com/osuushi/annulusmesh/advanced"
	"github.com/pkg/errors"
)

// Third party geometry code tends to panic on degenerate input rather than
// return an error. A crashed triangulation is still just a failed oracle, so
// the public entry points recover and convert the panic.
func handleOraclePanicRecover(r interface{}, name string) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return errors.Wrapf(advanced.ErrOracleFailure, "%s panicked: %v", name, err)
	}
	return errors.Wrapf(advanced.ErrOracleFailure, "%s panicked: %v", name, r)
}
