package steps

import (
	"os/exec"
	"time"

	"github.com/apex/log"
	"github.com/avast/retry-go"
	"github.com/launchkit/launchkit/cli/configure"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/util"
)

// InstallDependencies represents a step of the project dependencies installation.
type InstallDependencies struct {
	// RetryDelay is a delay between install attempts.
	RetryDelay time.Duration
}

// packageManager returns a package manager to use.
func packageManager(createCtx *create_ctx.CreateCtx) string {
	if createCtx.PackageManager != "" {
		return createCtx.PackageManager
	}
	if createCtx.CliOpts != nil && createCtx.CliOpts.PackageManager != "" {
		return createCtx.CliOpts.PackageManager
	}
	return configure.DefaultPackageManager
}

// Run installs project dependencies. Failures are reported as warnings.
func (step InstallDependencies) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if createCtx.NoInstall {
		log.Debug("Dependencies installation is skipped")
		return nil
	}

	pm := packageManager(createCtx)
	pmPath, err := exec.LookPath(pm)
	if err != nil {
		log.Warnf("%s is not found, dependencies are not installed", pm)
		templateCtx.InstallFailed = true
		return nil
	}

	attempts := uint(1)
	if createCtx.CliOpts != nil && createCtx.CliOpts.InstallAttempts > 0 {
		attempts = createCtx.CliOpts.InstallAttempts
	}

	log.Infof("Installing dependencies with %s", pm)
	err = retry.Do(
		func() error {
			return util.RunCommand(exec.Command(pmPath, "install"), templateCtx.AppPath,
				createCtx.Verbose)
		},
		retry.Attempts(attempts),
		retry.Delay(step.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if n+1 < attempts {
				log.Warnf("Install attempt %d of %d failed, retrying", n+1, attempts)
			}
		}),
	)
	if err != nil {
		log.Warnf("Failed to install dependencies: %s", err)
		templateCtx.InstallFailed = true
		return nil
	}

	log.Infof("Dependencies are installed")
	return nil
}
