// Package catalog holds the static visa and resource directory.
package catalog

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ozpath/internal/domain"
)

// Provider categories used on the resources page.
const (
	ProviderSkills    = "skills"
	ProviderMigration = "migration"
	ProviderOfficial  = "official"
	ProviderShipping  = "shipping"
	ProviderFinance   = "finance"
	ProviderPets      = "pets"
)

// Stream is a heading on the visa directory.
type Stream struct {
	ID    domain.VisaStream
	Title string
	Intro string
}

// Streams returns the directory headings in display order.
func Streams() []Stream {
	out := make([]Stream, len(streams))
	copy(out, streams)
	return out
}

// StreamByID looks up a stream heading.
func StreamByID(id domain.VisaStream) (Stream, bool) {
	for _, s := range streams {
		if s.ID == id {
			return s, true
		}
	}
	return Stream{}, false
}

// Visas returns every visa in directory order.
func Visas() []domain.Visa {
	out := make([]domain.Visa, 0, len(visas))
	for _, v := range visas {
		out = append(out, cloneVisa(v))
	}
	return out
}

// VisasByStream filters the directory. An unknown stream yields an error.
func VisasByStream(stream domain.VisaStream) ([]domain.Visa, error) {
	if _, ok := StreamByID(stream); !ok {
		return nil, fmt.Errorf("unknown visa stream %q", stream)
	}
	var out []domain.Visa
	for _, v := range visas {
		if v.Stream == stream {
			out = append(out, cloneVisa(v))
		}
	}
	return out, nil
}

// VisaBySubclass finds a visa by its subclass code, case-insensitively.
// "820" and "801" both resolve to the partner visa.
func VisaBySubclass(code string) (domain.Visa, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return domain.Visa{}, false
	}
	for _, v := range visas {
		for _, part := range strings.Split(v.Subclass, "/") {
			if part == code {
				return cloneVisa(v), true
			}
		}
	}
	return domain.Visa{}, false
}

// TierVisas returns the directory entries worth reading for an eligibility
// tier.
func TierVisas(tier domain.Tier) []domain.Visa {
	var out []domain.Visa
	for _, code := range tierSubclasses[tier] {
		if v, ok := VisaBySubclass(code); ok {
			out = append(out, v)
		}
	}
	return out
}

// Resources returns the links in a section, or all of them when section is
// empty.
func Resources(section domain.ResourceSection) []domain.Resource {
	var out []domain.Resource
	for _, r := range resources {
		if section == "" || r.Section == section {
			out = append(out, r)
		}
	}
	return out
}

// ServiceProviders returns the providers in a category, or all of them when
// category is empty.
func ServiceProviders(category string) []domain.ServiceProvider {
	var out []domain.ServiceProvider
	for _, p := range serviceProviders {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Occupations returns the key occupations on list, or all of them when list
// is empty.
func Occupations(list domain.OccupationList) []domain.Occupation {
	var out []domain.Occupation
	for _, o := range occupations {
		if list == "" || o.List == list {
			out = append(out, o)
		}
	}
	return out
}

// ParseOccupationList accepts a list name in any case.
func ParseOccupationList(s string) (domain.OccupationList, bool) {
	switch l := domain.OccupationList(strings.ToUpper(strings.TrimSpace(s))); l {
	case domain.ListMLTSSL, domain.ListSTSOL, domain.ListROL:
		return l, true
	}
	return "", false
}

func cloneVisa(v domain.Visa) domain.Visa {
	reqs := make([]string, len(v.Requirements))
	copy(reqs, v.Requirements)
	v.Requirements = reqs
	return v
}
