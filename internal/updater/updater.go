// Package updater performs in-place binary upgrades from GitHub
// releases.
package updater

import (
	"context"
	"fmt"
	"runtime"

	"github.com/creativeprojects/go-selfupdate"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const repoSlug = "daymark-app/daymark"

// Update replaces the running binary with the latest released build.
func Update(ctx context.Context) error {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	if latest.LessOrEqual(Version) {
		fmt.Printf("daymark %s is up to date\n", Version)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}

	fmt.Printf("Updating %s -> %s...\n", Version, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("applying update: %w", err)
	}

	fmt.Printf("Updated to daymark %s\n", latest.Version())
	return nil
}
