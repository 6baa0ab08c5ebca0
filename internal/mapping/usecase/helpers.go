package usecase

import "fmt"

// coalesceStr applies a partial-update field: when the pointer is set,
// its value wins; otherwise the existing value stays.
func coalesceStr(newVal *string, existing string) string {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func coalesceInt64(newVal *int64, existing int64) int64 {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func coalesceBool(newVal *bool, existing bool) bool {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// coalesceTag applies a tag field update. An empty tag never overwrites
// a known tag: webhook payloads routinely omit it and losing the last
// known tag would break tagged-release builds.
func coalesceTag(newVal *string, existing string) string {
	if newVal != nil && *newVal != "" {
		return *newVal
	}
	return existing
}

// target renders the human-readable build target for log and trigger
// messages.
func target(obsNamespace, project, pkg string) string {
	return fmt.Sprintf("%s/%s@%s", project, pkg, obsNamespace)
}
