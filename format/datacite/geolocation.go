package datacite

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

// minPolygonPoints is the smallest vertex count accepted as a polygon.
const minPolygonPoints = 3

// coordinateDigits is the number of fractional digits kept.
const coordinateDigits = 6

const (
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// GeoLocations returns one coverage per <geoLocation> that carries a
// spatial encoding. When a geoLocation holds several, the polygon wins
// over the box and the box over the point. Coverages are numbered
// "coverage-1", "coverage-2", ... in document order, and every coverage
// carries the record's Coverage date range when there is one.
func GeoLocations(doc *xmldoc.Document) []hub.GeoLocation {
	start, end, _ := CoverageRange(doc)

	out := make([]hub.GeoLocation, 0)
	for _, el := range entries(doc, "geoLocations", "geoLocation") {
		loc, ok := geoLocation(el)
		if !ok {
			slog.Debug("skipping geoLocation without spatial encoding", "place", loc.Description)
			continue
		}
		loc.ID = fmt.Sprintf("coverage-%d", len(out)+1)
		loc.StartDate = start
		loc.EndDate = end
		out = append(out, loc)
	}
	return out
}

func geoLocation(el *etree.Element) (hub.GeoLocation, bool) {
	loc := hub.GeoLocation{
		Description: xmldoc.Text(xmldoc.Child(el, "geoLocationPlace")),
	}

	for _, poly := range xmldoc.Children(el, "geoLocationPolygon") {
		if points := polygonPoints(poly); len(points) >= minPolygonPoints {
			loc.Type = hub.GeoPolygon
			loc.PolygonPoints = points
			return loc, true
		}
	}

	for _, box := range xmldoc.Children(el, "geoLocationBox") {
		if south, west, north, east, ok := boxBounds(box); ok {
			loc.Type = hub.GeoBox
			loc.LatMin, loc.LonMin, loc.LatMax, loc.LonMax = south, west, north, east
			return loc, true
		}
	}

	for _, point := range xmldoc.Children(el, "geoLocationPoint") {
		if lat, lon, ok := pointCoordinates(point); ok {
			loc.Type = hub.GeoPoint
			loc.LatMin, loc.LonMin = lat, lon
			return loc, true
		}
	}

	return loc, false
}

// boxBounds reads a box from its bound elements or, for DataCite 3
// records, from text of the form "south west north east". All four
// bounds must be valid.
func boxBounds(box *etree.Element) (south, west, north, east string, ok bool) {
	if fields, legacy := legacyFields(box, 4); legacy {
		south, west = latitude(fields[0]), longitude(fields[1])
		north, east = latitude(fields[2]), longitude(fields[3])
	} else {
		south = latitude(xmldoc.Text(xmldoc.Child(box, "southBoundLatitude")))
		west = longitude(xmldoc.Text(xmldoc.Child(box, "westBoundLongitude")))
		north = latitude(xmldoc.Text(xmldoc.Child(box, "northBoundLatitude")))
		east = longitude(xmldoc.Text(xmldoc.Child(box, "eastBoundLongitude")))
	}
	ok = south != "" && west != "" && north != "" && east != ""
	if !ok {
		slog.Debug("skipping geoLocationBox with invalid bounds")
	}
	return south, west, north, east, ok
}

// pointCoordinates reads a point from its child elements or, for
// DataCite 3 records, from text of the form "lat lon".
func pointCoordinates(point *etree.Element) (lat, lon string, ok bool) {
	if fields, legacy := legacyFields(point, 2); legacy {
		lat, lon = latitude(fields[0]), longitude(fields[1])
	} else {
		lat = latitude(xmldoc.Text(xmldoc.Child(point, "pointLatitude")))
		lon = longitude(xmldoc.Text(xmldoc.Child(point, "pointLongitude")))
	}
	ok = lat != "" && lon != ""
	if !ok {
		slog.Debug("skipping geoLocationPoint with invalid coordinates")
	}
	return lat, lon, ok
}

// legacyFields splits the text of an element without child elements
// into exactly n whitespace separated fields.
func legacyFields(el *etree.Element, n int) ([]string, bool) {
	if len(el.ChildElements()) > 0 {
		return nil, false
	}
	fields := strings.Fields(xmldoc.Text(el))
	return fields, len(fields) == n
}

func polygonPoints(poly *etree.Element) []hub.PolygonPoint {
	var points []hub.PolygonPoint
	for _, p := range xmldoc.Children(poly, "polygonPoint") {
		lat, lon, ok := pointCoordinates(p)
		if !ok {
			continue
		}
		points = append(points, hub.PolygonPoint{Lat: lat, Lon: lon})
	}
	return points
}

func latitude(raw string) string {
	return formatCoordinate(raw, maxLatitude)
}

func longitude(raw string) string {
	return formatCoordinate(raw, maxLongitude)
}

// FormatCoordinate formats a decimal coordinate with six fractional
// digits. Text that is not a finite number within ±180 yields "".
func FormatCoordinate(raw string) string {
	return formatCoordinate(raw, maxLongitude)
}

func formatCoordinate(raw string, limit float64) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Debug("invalid coordinate", "value", raw, "error", err)
		return ""
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		slog.Debug("coordinate out of range", "value", raw)
		return ""
	}
	return strconv.FormatFloat(v, 'f', coordinateDigits, 64)
}
