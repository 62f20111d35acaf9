package catalog

import (
	"testing"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisas_DirectoryOrder(t *testing.T) {
	all := Visas()
	require.Len(t, all, 10)
	assert.Equal(t, "189", all[0].Subclass)
	assert.Equal(t, "417-extension", all[len(all)-1].Subclass)

	for _, v := range all {
		_, ok := StreamByID(v.Stream)
		assert.True(t, ok, "visa %s has unknown stream %q", v.Subclass, v.Stream)
		assert.NotEmpty(t, v.Requirements, v.Subclass)
	}
}

func TestVisasByStream(t *testing.T) {
	tests := []struct {
		stream domain.VisaStream
		want   []string
	}{
		{domain.StreamSkilled, []string{"189", "190"}},
		{domain.StreamWork, []string{"482", "186"}},
		{domain.StreamFamily, []string{"820/801", "parent"}},
		{domain.StreamStudent, []string{"500", "485"}},
		{domain.StreamWorkingHoliday, []string{"417", "417-extension"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.stream), func(t *testing.T) {
			got, err := VisasByStream(tt.stream)
			require.NoError(t, err)
			var codes []string
			for _, v := range got {
				codes = append(codes, v.Subclass)
			}
			assert.Equal(t, tt.want, codes)
		})
	}

	_, err := VisasByStream("tourist")
	assert.Error(t, err)
}

func TestVisaBySubclass(t *testing.T) {
	v, ok := VisaBySubclass("189")
	require.True(t, ok)
	assert.Equal(t, "Skilled Independent Visa (subclass 189)", v.Name)

	partner, ok := VisaBySubclass("801")
	require.True(t, ok)
	assert.Equal(t, "820/801", partner.Subclass)

	_, ok = VisaBySubclass(" PARENT ")
	assert.True(t, ok)

	_, ok = VisaBySubclass("999")
	assert.False(t, ok)
	_, ok = VisaBySubclass("")
	assert.False(t, ok)
}

func TestVisas_ReturnsCopies(t *testing.T) {
	v, _ := VisaBySubclass("189")
	v.Requirements[0] = "changed"

	again, _ := VisaBySubclass("189")
	assert.Equal(t, "Invitation to apply after submitting an Expression of Interest (EOI)", again.Requirements[0])
}

func TestTierVisas(t *testing.T) {
	codes := func(vs []domain.Visa) []string {
		var out []string
		for _, v := range vs {
			out = append(out, v.Subclass)
		}
		return out
	}
	assert.Equal(t, []string{"189", "190"}, codes(TierVisas(domain.TierA)))
	assert.Equal(t, []string{"186"}, codes(TierVisas(domain.TierB)))
	assert.Equal(t, []string{"482", "417", "500"}, codes(TierVisas(domain.TierC)))
	assert.Empty(t, TierVisas("Z"))
}

func TestResources(t *testing.T) {
	assert.Len(t, Resources(domain.SectionOfficial), 4)
	assert.Len(t, Resources(domain.SectionLiving), 5)
	assert.Len(t, Resources(domain.SectionCommunity), 3)
	assert.Len(t, Resources(domain.SectionFacebook), 6)
	assert.Len(t, Resources(domain.SectionPetRelocation), 3)
	assert.Len(t, Resources(domain.SectionVideos), 4)
	assert.Len(t, Resources(""), 25)
	assert.Empty(t, Resources("unknown"))

	for _, r := range Resources("") {
		assert.Contains(t, r.Link, "https://", r.Title)
	}
}

func TestServiceProviders(t *testing.T) {
	assert.Len(t, ServiceProviders(ProviderSkills), 7)
	assert.Len(t, ServiceProviders(ProviderMigration), 4)
	assert.Len(t, ServiceProviders(ProviderOfficial), 2)
	assert.Len(t, ServiceProviders(""), 17)

	for _, p := range ServiceProviders(ProviderSkills) {
		assert.Equal(t, ProviderSkills, p.Category)
		assert.NotEmpty(t, p.Website, p.Name)
	}
}

func TestResources_FacebookGroups(t *testing.T) {
	groups := Resources(domain.SectionFacebook)
	assert.Equal(t, "UK to Australia Migration", groups[0].Title)
	for _, g := range groups {
		assert.Contains(t, g.Link, "https://www.facebook.com/groups/")
	}
}

func TestOccupations(t *testing.T) {
	all := Occupations("")
	assert.Len(t, all, 41)
	assert.Equal(t, all, Occupations(domain.ListMLTSSL))
	assert.Empty(t, Occupations(domain.ListSTSOL))

	var found bool
	for _, o := range all {
		assert.Len(t, o.ANZSCO, 6, o.Title)
		assert.NotEmpty(t, o.AssessingAuthority, o.Title)
		if o.ANZSCO == "261313" {
			found = true
			assert.Equal(t, "Software Engineer", o.Title)
			assert.Equal(t, "ACS", o.AssessingAuthority)
		}
	}
	assert.True(t, found)
}

func TestParseOccupationList(t *testing.T) {
	l, ok := ParseOccupationList(" mltssl ")
	assert.True(t, ok)
	assert.Equal(t, domain.ListMLTSSL, l)

	_, ok = ParseOccupationList("CSOL")
	assert.False(t, ok)
}
