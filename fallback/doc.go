// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fallback keeps the task list non-empty when the backend is not.

# Resolution

A fetch moves through a small state machine:

	fetching → done                    (remote success)
	fetching → falling_back → done     (cache hit)
	falling_back → static_fallback     (cache miss: bundled fixtures)

Resolve never returns an error: read failures stay invisible to the end
user as long as any fallback exists.

# Fixtures

Three bundled sets: one for image classification, one default set for the
remaining networked types, and the survey set. Surveys are special - they
are always served from the bundled set, never fetched, and occupy the
reserved id range [100,200).
*/
package fallback
