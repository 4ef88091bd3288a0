package datacite

import (
	"testing"

	"github.com/lehigh-university-libraries/curator/mapping"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

const envelopeRecord = `<?xml version="1.0" encoding="UTF-8"?>
<envelope>
  <resource xmlns="http://datacite.org/schema/kernel-4">
    <identifier identifierType="DOI">10.5880/GFZ.1.2.2024.001</identifier>
    <creators>
      <creator>
        <creatorName nameType="Personal">Doe, Jane</creatorName>
        <givenName>Jane</givenName>
        <familyName>Doe</familyName>
        <nameIdentifier nameIdentifierScheme="ORCID" schemeURI="https://orcid.org">https://orcid.org/0000-0002-1825-0097</nameIdentifier>
        <affiliation affiliationIdentifier="https://ror.org/04z8jg394" affiliationIdentifierScheme="ROR">GFZ German Research Centre for Geosciences</affiliation>
      </creator>
      <creator>
        <creatorName>Smith, John</creatorName>
      </creator>
      <creator>
        <creatorName nameType="Organizational">Helmholtz  Data Federation</creatorName>
      </creator>
    </creators>
    <titles>
      <title xml:lang="en">Seismic records of the 2024 campaign</title>
      <title titleType="Subtitle">Raw waveforms</title>
      <title titleType="AlternativeTitle">Campaign 2024</title>
      <title titleType="TranslatedTitle">Seismische Aufzeichnungen</title>
      <title> </title>
    </titles>
    <publisher>GFZ Data Services</publisher>
    <publicationYear>2024</publicationYear>
    <resourceType resourceTypeGeneral="Dataset">Waveforms</resourceType>
    <subjects>
      <subject>seismology</subject>
      <subject>  </subject>
      <subject subjectScheme="NASA/GCMD Earth Science Keywords" schemeURI="https://gcmd.earthdata.nasa.gov/kms" valueURI="https://gcmd.earthdata.nasa.gov/kms/concept/c47f6052-634e-40ef-a5ac-13f69f6f4c2a">Science Keywords &gt; EARTH SCIENCE &gt; SOLID EARTH &gt; EARTHQUAKES</subject>
      <subject subjectScheme="GCMD Instruments" valueURI="https://gcmd.earthdata.nasa.gov/kms/concept/2a9b3a8c-5b19-4c57-8e2a-6d1b5f8a9c10/">Instruments &gt; SEISMOMETERS</subject>
      <subject subjectScheme="NASA/GCMD Instruments" valueURI="https://gcmd.earthdata.nasa.gov/kms/concept/b9a6b3cb-1b1a-4a58-9d2e-3e0b9c4d5e6f">Instruments &gt; Earth Remote Sensing Instruments &gt; ACCELEROMETERS</subject>
      <subject subjectScheme="GCMD Platforms" valueURI="https://gcmd.earthdata.nasa.gov/kms/concept/3466eed1-2fbb-49bf-ab0b-dc08731d502b">Platforms &gt; In Situ Land-based Platforms &gt; SEISMOLOGICAL STATIONS</subject>
      <subject subjectScheme="LCSH" valueURI="http://id.loc.gov/authorities/subjects/sh85119724">Seismology</subject>
      <subject schemeURI="http://example.org/thesaurus">Unlabelled vocabulary</subject>
    </subjects>
    <contributors>
      <contributor contributorType="ContactPerson">
        <contributorName nameType="Personal">Doe, Jane</contributorName>
        <givenName>Jane</givenName>
        <familyName>Doe</familyName>
        <nameIdentifier nameIdentifierScheme="ORCID">0000-0002-1825-0097</nameIdentifier>
      </contributor>
      <contributor contributorType="DataCurator">
        <contributorName>Miller, Ann</contributorName>
        <givenName>Ann</givenName>
        <familyName>Miller</familyName>
      </contributor>
      <contributor contributorType="ResearchGroup">
        <contributorName>Seismology Section</contributorName>
      </contributor>
      <contributor contributorType="WorkPackageLeader">
        <contributorName nameType="Personal">Miller, Ann</contributorName>
        <givenName>Ann</givenName>
        <familyName>Miller</familyName>
        <affiliation>University of Potsdam</affiliation>
      </contributor>
    </contributors>
    <dates>
      <date dateType="Collected">2024-01-01/2024-12-31</date>
      <date dateType="Available">2025-01-15</date>
      <date dateType="Coverage">2024-03-01T00:00:00/2024-03-31T23:59:59</date>
      <date dateType="Valid">/2030-01-01</date>
      <date dateType="Created">2023-06-01/</date>
      <date dateType="Updated"></date>
    </dates>
    <language>en</language>
    <version>1.1</version>
    <rightsList>
      <rights rightsURI="https://creativecommons.org/licenses/by/4.0/legalcode" rightsIdentifier="CC-BY-4.0">Creative Commons Attribution 4.0 International</rights>
      <rights>No identifier</rights>
      <rights rightsIdentifier="cc0-1.0">CC0</rights>
    </rightsList>
    <descriptions>
      <description descriptionType="Abstract">  Waveform data recorded by the temporary network.  </description>
      <description descriptionType="Methods"></description>
      <description descriptionType="TechnicalInfo">Sampling rate 100 Hz.</description>
    </descriptions>
    <geoLocations>
      <geoLocation>
        <geoLocationPlace>Potsdam</geoLocationPlace>
        <geoLocationPoint>
          <pointLongitude>13.064</pointLongitude>
          <pointLatitude>52.38</pointLatitude>
        </geoLocationPoint>
        <geoLocationBox>
          <westBoundLongitude>12.5</westBoundLongitude>
          <eastBoundLongitude>13.5</eastBoundLongitude>
          <southBoundLatitude>52</southBoundLatitude>
          <northBoundLatitude>52.7</northBoundLatitude>
        </geoLocationBox>
      </geoLocation>
      <geoLocation>
        <geoLocationPlace>Only a place name</geoLocationPlace>
      </geoLocation>
      <geoLocation>
        <geoLocationPoint>
          <pointLongitude>-70.1234567</pointLongitude>
          <pointLatitude>-33.5</pointLatitude>
        </geoLocationPoint>
      </geoLocation>
      <geoLocation>
        <geoLocationPolygon>
          <polygonPoint><pointLongitude>10</pointLongitude><pointLatitude>50</pointLatitude></polygonPoint>
          <polygonPoint><pointLongitude>11</pointLongitude><pointLatitude>50</pointLatitude></polygonPoint>
          <polygonPoint><pointLongitude>11</pointLongitude><pointLatitude>51</pointLatitude></polygonPoint>
          <polygonPoint><pointLongitude>10</pointLongitude><pointLatitude>50</pointLatitude></polygonPoint>
        </geoLocationPolygon>
        <geoLocationBox>
          <westBoundLongitude>10</westBoundLongitude>
          <eastBoundLongitude>11</eastBoundLongitude>
          <southBoundLatitude>50</southBoundLatitude>
          <northBoundLatitude>51</northBoundLatitude>
        </geoLocationBox>
      </geoLocation>
    </geoLocations>
    <relatedItems>
      <relatedItem relatedItemType="JournalArticle" relationType="IsCitedBy">
        <titles><title>A related article</title></titles>
        <creators><creator><creatorName>Related, Author</creatorName></creator></creators>
        <contributors><contributor contributorType="Editor"><contributorName>Related, Editor</contributorName></contributor></contributors>
      </relatedItem>
    </relatedItems>
  </resource>
  <gmd:MD_Metadata xmlns:gmd="http://www.isotc211.org/2005/gmd" xmlns:gco="http://www.isotc211.org/2005/gco">
    <gmd:identificationInfo>
      <gmd:MD_DataIdentification>
        <gmd:citation><gmd:CI_Citation><gmd:title><gco:CharacterString>ISO title</gco:CharacterString></gmd:title></gmd:CI_Citation></gmd:citation>
      </gmd:MD_DataIdentification>
    </gmd:identificationInfo>
  </gmd:MD_Metadata>
</envelope>`

func loadFixture(t *testing.T, input string) *xmldoc.Document {
	t.Helper()
	doc, err := xmldoc.Load([]byte(input))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return doc
}

func tables(t *testing.T) *mapping.Tables {
	t.Helper()
	tb, err := mapping.Default()
	if err != nil {
		t.Fatalf("loading tables: %v", err)
	}
	return tb
}
