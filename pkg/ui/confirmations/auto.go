package confirmations

import (
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// AlwaysYes approves every overwrite without asking. It logs each approval
// so unattended runs leave a trace of what they replaced.
var AlwaysYes types.Confirmer = types.ConfirmFunc(func(path string) (bool, error) {
	logger := logging.GetLogger("confirmations")
	logger.Info().Str("path", path).Msg("Overwrite approved by --yes")
	return true, nil
})
