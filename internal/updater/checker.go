// Copyright 2025 Rollupcost Users
// SPDX-License-Identifier: Apache-2.0

package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-version"
)

const (
	// GitHubAPIURL is the endpoint for fetching the latest release
	GitHubAPIURL = "https://api.github.com/repos/dotandev/rollupcost/releases/latest"
	// CheckInterval is how often we check for updates (24 hours)
	CheckInterval = 24 * time.Hour
	// RequestTimeout is the maximum time to wait for GitHub API
	RequestTimeout = 5 * time.Second
)

// Checker handles update checking logic
type Checker struct {
	currentVersion string
	cacheDir       string
	apiURL         string
}

// GitHubRelease represents the GitHub API response for a release
type GitHubRelease struct {
	TagName string `json:"tag_name"`
}

// CacheData stores the last check timestamp and latest version
type CacheData struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
}

// NewChecker creates a new update checker
func NewChecker(currentVersion string) *Checker {
	return &Checker{
		currentVersion: currentVersion,
		cacheDir:       getCacheDir(),
		apiURL:         GitHubAPIURL,
	}
}

// CheckForUpdates performs the update check; callers run it in a
// goroutine so CLI startup is never blocked.
func (c *Checker) CheckForUpdates() {
	if c.isUpdateCheckDisabled() {
		return
	}

	shouldCheck, err := c.shouldCheck()
	if err != nil || !shouldCheck {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
	defer cancel()

	latestVersion, err := c.fetchLatestVersion(ctx)
	if err != nil {
		// Silent failure - don't bother the user
		return
	}

	if err := c.updateCache(latestVersion); err != nil {
		return
	}

	needsUpdate, err := CompareVersions(c.currentVersion, latestVersion)
	if err != nil || !needsUpdate {
		return
	}

	c.displayNotification(latestVersion)
}

// shouldCheck determines if we should check based on cache
func (c *Checker) shouldCheck() (bool, error) {
	cacheFile := filepath.Join(c.cacheDir, "last_update_check")

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		// Cache doesn't exist or can't be read - should check
		return true, nil
	}

	var cache CacheData
	if err := json.Unmarshal(data, &cache); err != nil {
		// Corrupted cache - should check
		return true, nil
	}

	return time.Since(cache.LastCheck) >= CheckInterval, nil
}

// fetchLatestVersion calls GitHub API to get the latest release
func (c *Checker) fetchLatestVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.apiURL, nil)
	if err != nil {
		return "", err
	}

	// Set User-Agent header (GitHub API requires it)
	req.Header.Set("User-Agent", "rollupcost-cli")
	req.Header.Set("Accept", "application/vnd.github+json")

	client := &http.Client{
		Timeout: RequestTimeout,
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var release GitHubRelease
	if err := json.Unmarshal(body, &release); err != nil {
		return "", err
	}

	return release.TagName, nil
}

// CompareVersions reports whether latest is newer than current.
func CompareVersions(current, latest string) (bool, error) {
	current = strings.TrimPrefix(current, "v")
	latest = strings.TrimPrefix(latest, "v")

	// Skip comparison if running dev version
	if current == "dev" || current == "" {
		return false, nil
	}

	currentVer, err := version.NewVersion(current)
	if err != nil {
		return false, err
	}

	latestVer, err := version.NewVersion(latest)
	if err != nil {
		return false, err
	}

	return latestVer.GreaterThan(currentVer), nil
}

// displayNotification prints the update message to stderr
func (c *Checker) displayNotification(latestVersion string) {
	message := fmt.Sprintf(
		"\n💡 A new version (%s) is available! Run 'go install github.com/dotandev/rollupcost@latest' to update.\n\n",
		latestVersion,
	)
	fmt.Fprint(os.Stderr, message)
}

// updateCache updates the cache file with the latest check time and version
func (c *Checker) updateCache(latestVersion string) error {
	if err := os.MkdirAll(c.cacheDir, 0755); err != nil {
		return err
	}

	cache := CacheData{
		LastCheck:     time.Now(),
		LatestVersion: latestVersion,
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}

	cacheFile := filepath.Join(c.cacheDir, "last_update_check")
	return os.WriteFile(cacheFile, data, 0644)
}

// isUpdateCheckDisabled checks if the user has opted out
func (c *Checker) isUpdateCheckDisabled() bool {
	return os.Getenv("ROLLUPCOST_NO_UPDATE_CHECK") != ""
}

// getCacheDir returns the appropriate cache directory for the platform
func getCacheDir() string {
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "rollupcost")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".cache", "rollupcost")
	}

	// Last resort - use temp directory
	return filepath.Join(os.TempDir(), "rollupcost")
}
