package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

// Dispatcher receives the resolved configuration and command identity and
// performs the command's work. The git/GitHub/AI operations live behind
// this boundary and are installed by the hosting process.
type Dispatcher func(res *config.Resolution) error

var dispatch Dispatcher = defaultDispatch

// SetDispatcher installs the command layer. Passing nil restores the
// default, which only reports the resolution.
func SetDispatcher(d Dispatcher) {
	if d == nil {
		dispatch = defaultDispatch
		return
	}
	dispatch = d
}

// runResolved is the shared tail of every subcommand: resolve the layered
// configuration once, then hand it to the dispatch layer.
func runResolved(cmd *cobra.Command, id config.CommandIdentity, raw map[string]any) error {
	res, err := config.Resolve(config.ResolveOptions{
		Identity:      id,
		Raw:           raw,
		WarningWriter: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	return dispatch(res)
}

func defaultDispatch(res *config.Resolution) error {
	if res.Config.Debug || res.Config.DryRun {
		fmt.Printf("resolved command %q (model %s, %d context directories)\n",
			res.Identity.Name, res.Config.Model, len(res.Config.ContextDirectories))
	}
	return nil
}
