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


// Command weburl parses, resolves and reduces http and https URLs from the
// command line.
//
// Usage:
//
//	weburl parse [-o text|json|yaml] <url>...
//	weburl resolve --base <url> <ref>...
//	weburl reduce --base <url> <ref>...
//	weburl query <query-string>
package main

import "os"

func main() {
	opts := newOptions()
	os.Exit(execute(newRootCmd(opts), opts))
}
