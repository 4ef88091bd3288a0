package hub

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIdentityKeyPrefersORCID(t *testing.T) {
	a := NewPerson(Person{FirstName: "Jane", LastName: "Doe", ORCID: "0000-0002-1825-0097"}, "Author")
	b := NewPerson(Person{FirstName: "J.", LastName: "Doe", ORCID: "0000-0002-1825-0097"}, "Editor")
	if a.IdentityKey() != b.IdentityKey() {
		t.Errorf("same ORCID, different keys: %q vs %q", a.IdentityKey(), b.IdentityKey())
	}
	if a.NameKey() == b.NameKey() {
		t.Error("name keys should differ")
	}
}

func TestIdentityKeyNameFallback(t *testing.T) {
	a := NewPerson(Person{FirstName: "Jane ", LastName: " DOE"}, "Author")
	b := NewPerson(Person{Name: "jane   doe"}, "Author")
	if a.IdentityKey() != b.IdentityKey() {
		t.Errorf("keys differ: %q vs %q", a.IdentityKey(), b.IdentityKey())
	}
}

func TestInstitutionKeyIsExact(t *testing.T) {
	a := NewInstitution(Institution{Name: "GFZ  Potsdam"}, "Research Group")
	b := NewInstitution(Institution{Name: "GFZ Potsdam"}, "Research Group")
	if a.IdentityKey() == b.IdentityKey() {
		t.Error("institution names differing in internal spacing must not share a key")
	}
	p := NewPerson(Person{Name: "GFZ Potsdam"}, "Other")
	if p.IdentityKey() == b.IdentityKey() {
		t.Error("person and institution share a key")
	}
}

func TestAnonymous(t *testing.T) {
	if !NewPerson(Person{}, "Other").Anonymous() {
		t.Error("empty person should be anonymous")
	}
	if NewInstitution(Institution{RORID: "https://ror.org/04z8jg394"}, "Other").Anonymous() {
		t.Error("institution with ROR id is identifiable")
	}
}

func TestMergeAffiliations(t *testing.T) {
	existing := []Affiliation{
		{Value: "GFZ German Research Centre for Geosciences", RORID: "https://ror.org/04Z8JG394"},
		{Value: "University of Potsdam"},
	}
	merged := MergeAffiliations(existing,
		Affiliation{Value: "Helmholtz Centre Potsdam", RORID: "https://ror.org/04z8jg394"},
		Affiliation{Value: "university  of potsdam", RORID: "https://ror.org/03bnmw459"},
		Affiliation{Value: "ETH Zurich"},
	)

	if len(merged) != 3 {
		t.Fatalf("expected 3 affiliations, got %d: %+v", len(merged), merged)
	}
	if merged[0].Value != "GFZ German Research Centre for Geosciences" {
		t.Errorf("first-seen value not kept: %q", merged[0].Value)
	}
	if merged[1].RORID != "https://ror.org/03bnmw459" {
		t.Errorf("ROR id not adopted from duplicate: %+v", merged[1])
	}
	if merged[2].Value != "ETH Zurich" {
		t.Errorf("new affiliation not appended: %+v", merged[2])
	}
	if existing[1].RORID != "" {
		t.Error("input slice mutated")
	}
}

func TestAffiliationsWithDifferentRORAreDistinct(t *testing.T) {
	a := Affiliation{Value: "Institute of Physics", RORID: "https://ror.org/aaa"}
	b := Affiliation{Value: "Institute of Physics", RORID: "https://ror.org/bbb"}
	if a.Duplicates(b) {
		t.Error("different ROR ids must not be duplicates")
	}
}

func TestMergeRoles(t *testing.T) {
	got := MergeRoles([]string{"Researcher"}, "Data Curator", "Researcher", "Editor", "Data Curator")
	want := "Researcher,Data Curator,Editor"
	if strings.Join(got, ",") != want {
		t.Errorf("got %v, want %s", got, want)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	a := NewPerson(Person{FirstName: "Jane"}, "Author")
	a.Affiliations = []Affiliation{{Value: "X"}}
	b := a.Clone()
	b.Person.FirstName = "John"
	b.Roles[0] = "Editor"
	b.Affiliations[0].Value = "Y"
	if a.Person.FirstName != "Jane" || a.Roles[0] != "Author" || a.Affiliations[0].Value != "X" {
		t.Error("clone aliases the original")
	}
}

func TestEmptyResultSerialisesEmptyLists(t *testing.T) {
	data, err := json.Marshal(NewResult())
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, field := range []string{"titles", "authors", "contributors", "descriptions", "dates", "freeKeywords", "gcmdKeywords", "coverages", "licenses"} {
		if !strings.Contains(s, `"`+field+`":[]`) {
			t.Errorf("%s not serialised as []: %s", field, s)
		}
	}
	if !strings.Contains(s, `"resourceType":null`) {
		t.Errorf("resourceType not null: %s", s)
	}
}
