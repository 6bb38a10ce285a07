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

import "golang.org/x/net/publicsuffix"

// RegistrableDomain returns the host's effective top-level domain plus one
// label, as listed by the Public Suffix List ("a.b.example.co.uk" gives
// "example.co.uk"). Unlike Domain it knows about multi-label suffixes. It
// reports false for URLs without a host and for hosts that are themselves
// public suffixes.
func (u *URL) RegistrableDomain() (string, bool) {
	host, ok := u.Host()
	if !ok {
		return "", false
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", false
	}
	return domain, true
}

// PublicSuffix returns the public suffix of the host ("co.uk" for
// "example.co.uk") and whether it is ICANN-managed. The suffix is empty for
// URLs without a host.
func (u *URL) PublicSuffix() (string, bool) {
	host, ok := u.Host()
	if !ok {
		return "", false
	}
	return publicsuffix.PublicSuffix(host)
}
