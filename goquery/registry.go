package goquery

import (
	"slices"
	"strings"
)

// Registry maps page domains to site-specific locators. Domains without a
// registration use the fallback locators, so an empty registry behaves the
// same for every page.
//
// Register all domains before extraction starts; Register is not safe for
// concurrent use with Get.
type Registry struct {
	fallback *Locators
	domains  map[string]*Locators
}

// NewRegistry creates a Registry that returns fallback for unknown domains.
func NewRegistry(fallback *Locators) *Registry {
	return &Registry{
		fallback: fallback,
		domains:  make(map[string]*Locators),
	}
}

// Register sets the locators for a domain, replacing any previous ones.
// A leading "www." is ignored.
func (r *Registry) Register(domain string, locators *Locators) {
	r.domains[normalizeDomain(domain)] = locators
}

// Get returns the locators for domain, or the fallback.
func (r *Registry) Get(domain string) *Locators {
	if l, ok := r.domains[normalizeDomain(domain)]; ok {
		return l
	}
	return r.fallback
}

// List returns the registered domains in sorted order.
func (r *Registry) List() []string {
	domains := make([]string, 0, len(r.domains))
	for d := range r.domains {
		domains = append(domains, d)
	}
	slices.Sort(domains)
	return domains
}

func normalizeDomain(domain string) string {
	return strings.TrimPrefix(strings.ToLower(domain), "www.")
}
