package datacite

import (
	"testing"

	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/mapping"
)

func TestCanParse(t *testing.T) {
	f := &Format{}
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"namespace", `<resource xmlns="http://datacite.org/schema/kernel-4"/>`, true},
		{"prefixed", `<dc:resource xmlns:dc="x"/>`, true},
		{"envelope", `<envelope><resource/></envelope>`, true},
		{"json", `{"doi": "10.1234/x"}`, false},
		{"empty", "   ", false},
		{"other xml", `<mods/>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.CanParse([]byte(tt.input)); got != tt.want {
				t.Errorf("CanParse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadScalars(t *testing.T) {
	doc := loadFixture(t, envelopeRecord)
	s := ReadScalars(doc)

	want := Scalars{
		DOI:      "10.5880/GFZ.1.2.2024.001",
		Year:     "2024",
		Version:  "1.1",
		Language: "en",
	}
	if s != want {
		t.Errorf("ReadScalars() = %+v, want %+v", s, want)
	}
}

func TestReadScalarsFallbackIdentifier(t *testing.T) {
	doc := loadFixture(t, `<resource><identifier identifierType="URL">https://example.org/1</identifier></resource>`)
	if got := ReadScalars(doc).DOI; got != "https://example.org/1" {
		t.Errorf("DOI = %q, want first identifier", got)
	}

	doc = loadFixture(t, `<resource><publicationYear>2020</publicationYear></resource>`)
	if got := ReadScalars(doc); got.DOI != "" || got.Version != "" {
		t.Errorf("missing scalars should be empty, got %+v", got)
	}
}

func TestTitles(t *testing.T) {
	doc := loadFixture(t, envelopeRecord)
	got := Titles(doc, tables(t))

	want := []hub.Title{
		{Title: "Seismic records of the 2024 campaign", TitleType: mapping.MainTitleSlug},
		{Title: "Raw waveforms", TitleType: "subtitle"},
		{Title: "Campaign 2024", TitleType: "alternative-title"},
		{Title: "Seismische Aufzeichnungen", TitleType: "translated-title"},
	}
	if len(got) != len(want) {
		t.Fatalf("Titles() returned %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("title %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTitlesIgnoreRelatedItems(t *testing.T) {
	doc := loadFixture(t, envelopeRecord)
	for _, title := range Titles(doc, tables(t)) {
		if title.Title == "A related article" {
			t.Fatal("title from relatedItem leaked into the record")
		}
	}
}

func TestDescriptions(t *testing.T) {
	doc := loadFixture(t, envelopeRecord)
	got := Descriptions(doc)

	if len(got) != 2 {
		t.Fatalf("Descriptions() returned %d entries, want 2: %+v", len(got), got)
	}
	if got[0].Type != "Abstract" || got[0].Description != "Waveform data recorded by the temporary network." {
		t.Errorf("first description = %+v", got[0])
	}
	if got[1].Type != "TechnicalInfo" {
		t.Errorf("second description type = %q, want TechnicalInfo", got[1].Type)
	}
}

func TestRights(t *testing.T) {
	doc := loadFixture(t, envelopeRecord)
	got := Rights(doc)

	want := []string{"CC-BY-4.0", "cc0-1.0"}
	if len(got) != len(want) {
		t.Fatalf("Rights() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rights()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResourceType(t *testing.T) {
	tb := tables(t)

	doc := loadFixture(t, envelopeRecord)
	got := ResourceType(doc, tb)
	if got == nil || *got != "10" {
		t.Errorf("ResourceType(Dataset) = %v, want 10", got)
	}

	doc = loadFixture(t, `<resource><resourceType resourceTypeGeneral="JournalArticle"/></resource>`)
	if got := ResourceType(doc, tb); got == nil {
		t.Error("ResourceType(JournalArticle) = nil, want an id")
	}

	doc = loadFixture(t, `<resource><resourceType resourceTypeGeneral="Hologram"/></resource>`)
	if got := ResourceType(doc, tb); got != nil {
		t.Errorf("unknown resource type = %q, want nil", *got)
	}

	doc = loadFixture(t, `<resource><resourceType>Text only</resourceType></resource>`)
	if got := ResourceType(doc, tb); got != nil {
		t.Errorf("missing resourceTypeGeneral = %q, want nil", *got)
	}
}

func TestDates(t *testing.T) {
	doc := loadFixture(t, envelopeRecord)
	got := Dates(doc, tables(t))

	want := []hub.DateEntry{
		{DateType: "collected", StartDate: "2024-01-01", EndDate: "2024-12-31"},
		{DateType: "available", StartDate: "2025-01-15"},
		{DateType: "coverage", StartDate: "2024-03-01T00:00:00", EndDate: "2024-03-31T23:59:59"},
		{DateType: "valid", EndDate: "2030-01-01"},
		{DateType: "created", StartDate: "2023-06-01"},
	}
	if len(got) != len(want) {
		t.Fatalf("Dates() returned %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("date %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDatesAbsent(t *testing.T) {
	doc := loadFixture(t, `<resource><titles><title>x</title></titles></resource>`)
	got := Dates(doc, tables(t))
	if got == nil || len(got) != 0 {
		t.Errorf("Dates() = %#v, want empty non-nil slice", got)
	}
}

func TestSplitDateRange(t *testing.T) {
	tests := []struct {
		raw, start, end string
	}{
		{"2024-01-01/2024-12-31", "2024-01-01", "2024-12-31"},
		{"2024", "2024", ""},
		{"/2024", "", "2024"},
		{"2024/", "2024", ""},
		{" 2020 / 2021 ", "2020", "2021"},
		{"a/b/c", "a", "b/c"},
		{"", "", ""},
	}
	for _, tt := range tests {
		start, end := SplitDateRange(tt.raw)
		if start != tt.start || end != tt.end {
			t.Errorf("SplitDateRange(%q) = (%q, %q), want (%q, %q)", tt.raw, start, end, tt.start, tt.end)
		}
	}
}

func TestCoverageRange(t *testing.T) {
	doc := loadFixture(t, `<resource><dates>
		<date dateType="coverage">2001/2002</date>
		<date dateType="Coverage">2010/2011</date>
	</dates></resource>`)
	start, end, ok := CoverageRange(doc)
	if !ok || start != "2001" || end != "2002" {
		t.Errorf("CoverageRange() = (%q, %q, %v), want first coverage", start, end, ok)
	}

	doc = loadFixture(t, `<resource><dates><date dateType="Issued">2001</date></dates></resource>`)
	if _, _, ok := CoverageRange(doc); ok {
		t.Error("CoverageRange() found a range in a record without one")
	}
}
