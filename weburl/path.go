/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/


package weburl

import "strings"

// dotDot is the only dot segment the normalization gives meaning to; "." is
// kept as an ordinary segment.
const dotDot = ".."

// removeDotSegments collapses ".." segments with a stack scan. A ".." pops
// the previous segment unless the stack is empty or already ends in "..", in
// which case it is kept. The leading empty segment of a rooted path is the
// root itself and is never popped; a ".." against it is dropped.
func removeDotSegments(path string) string {
	rooted := strings.HasPrefix(path, "/")
	segments := strings.Split(path, "/")
	stack := make([]string, 0, len(segments))

	for _, segment := range segments {
		if segment != dotDot {
			stack = append(stack, segment)
			continue
		}
		top := len(stack) - 1
		switch {
		case rooted && top == 0:
			// Already at the root.
		case top < 0 || stack[top] == dotDot:
			stack = append(stack, segment)
		default:
			stack = stack[:top]
		}
	}

	out := strings.Join(stack, "/")
	if rooted && out == "" {
		return "/"
	}
	return out
}

// mergePaths merges a reference path onto a base path. A rooted reference
// replaces the base path; otherwise the last segment of the base path is
// dropped and the reference appended. The result is dot-segment normalized.
func mergePaths(basePath, refPath string) string {
	if strings.HasPrefix(refPath, "/") {
		return removeDotSegments(refPath)
	}
	lastSlash := strings.LastIndex(basePath, "/")
	return removeDotSegments(basePath[:lastSlash+1] + refPath)
}
